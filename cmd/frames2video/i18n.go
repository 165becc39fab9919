// Package main provides localization for the frames2video CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Convert a folder of numbered image frames into a video without altering resolution.": "連番画像フレームのフォルダを解像度を変えずに動画へ変換します。",
		"Converting %s to %s at %.1f fps...":                                                  "%s を %s へ変換中 (%.1f fps)...",
		"Saved %s (%d frames, %dx%d)":                                                         "%s を保存しました (%d フレーム, %dx%d)",
		"Interrupted, shutting down...":                                                       "中断されました。シャットダウン中...",
	})
}
