// Package main provides localization for the kittidrives CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Process KITTI dataset drives into individual videos.": "KITTIデータセットのドライブをそれぞれ個別の動画に変換します。",
		"Searching for drives in %s":                           "%s でドライブを検索中",
		"the %q directory was not found inside %s":             "%q ディレクトリが %s 内に見つかりませんでした",
		"Failed to write summary: %s":                          "サマリーの書き込みに失敗しました: %s",
		"Interrupted, shutting down...":                        "中断されました。シャットダウン中...",
	})
}
