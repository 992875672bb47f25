// Package notify formats the chat messages posted back to the person who
// shared a schedule photo.
//
// The package only builds text. Sending it is left to the caller's chat
// client.
package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/shiftcal"
	"github.com/tsawler/shiftcal/model"
)

// Line formats a shift as "<YYYY-MM-DD> <HH:MM> ~ <YYYY-MM-DD> <HH:MM>"
func Line(s model.Shift) string {
	return fmt.Sprintf("%s %s ~ %s %s", s.StartDate(), s.StartTime(), s.EndDate(), s.EndTime())
}

// Processing is posted when a photo has been received and extraction starts
func Processing(source string) string {
	return fmt.Sprintf("%s を受け付けました。シフトを読み取っています…", source)
}

// Message builds the result post: a header naming the source, a bulleted
// Line per shift, and a note when rows were skipped or look suspicious.
func Message(source string, shifts []model.Shift, warnings []shiftcal.Warning) string {
	var sb strings.Builder

	if len(shifts) == 0 {
		fmt.Fprintf(&sb, "%s からシフトを読み取れませんでした。\n", source)
	} else {
		fmt.Fprintf(&sb, "%s から %d 件のシフトを登録しました。\n", source, len(shifts))
		for _, s := range shifts {
			fmt.Fprintf(&sb, "・ %s\n", Line(s))
		}
	}

	if n := shiftcal.Discarded(warnings); n > 0 {
		fmt.Fprintf(&sb, "読み取れなかった行: %d\n", n)
	}
	for _, w := range warnings {
		if w.Kind == shiftcal.EndNotAfterStart {
			fmt.Fprintf(&sb, "確認してください: %s (終了時刻が開始時刻より後ではありません)\n", w.Text)
		}
	}

	return sb.String()
}

// Failure builds the post sent when extraction failed for the whole photo
func Failure(source string, err error) string {
	if errors.Is(err, model.ErrMalformedInput) {
		return fmt.Sprintf("%s の文字認識結果を読み込めませんでした。撮り直してもう一度送ってください。", source)
	}
	return fmt.Sprintf("%s の処理中にエラーが発生しました: %v", source, err)
}
