package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Batch driver messages (info/warn/error)
		"Found %d drives to process":                                     "%d 件のドライブが見つかりました",
		"Image folder not found for drive %s, skipping (expected at %s)": "ドライブ %s の画像フォルダが見つかりません。スキップします (想定パス: %s)",
		"Processing drive %s":                                            "ドライブ %s を処理中",
		"Drive %s failed: %s":                                            "ドライブ %s が失敗しました: %s",
		"Saved %s (%d frames)":                                           "%s を保存しました (%d フレーム)",

		// Convert stage messages (debug/warn)
		"Found and sorted %d frames in %s":       "%d 件のフレームを %s で検出・ソートしました",
		"Video dimensions will be %dx%d":         "動画サイズは %dx%d になります",
		"Wrote frame %d/%d":                      "フレーム %d/%d を書き込みました",
		"Could not remove partial output %s: %s": "未完成の出力 %s を削除できませんでした: %s",
	})
}
