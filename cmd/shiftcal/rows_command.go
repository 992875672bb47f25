package main

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tsawler/shiftcal/shift"
)

type rowJSON struct {
	Row     int    `json:"row"`
	Text    string `json:"text"`
	Length  int    `json:"length"`
	Status  string `json:"status"`
	Cleaned string `json:"cleaned,omitempty"`
}

func newRowsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rows <file>",
		Short: "Show reconstructed rows and whether each produced a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := ctx.extractor(args[0])
			if err != nil {
				return err
			}
			outcomes, err := ext.Outcomes()
			if err != nil {
				return fmt.Errorf("rows %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput || !isTerminal(out) {
				return writeJSON(cmd, toRowJSON(outcomes))
			}
			if len(outcomes) == 0 {
				fmt.Fprintf(out, "No rows found in %s\n", filepath.Base(args[0]))
				return nil
			}
			fmt.Fprintln(out, renderRowTable(outcomes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON even on a terminal")
	return cmd
}

func toRowJSON(outcomes []shift.Outcome) []rowJSON {
	rows := make([]rowJSON, len(outcomes))
	for i, o := range outcomes {
		rows[i] = rowJSON{
			Row:     i,
			Text:    o.Row,
			Length:  utf8.RuneCountInString(o.Row),
			Status:  o.Reason.String(),
			Cleaned: o.Cleaned,
		}
	}
	return rows
}

func renderRowTable(outcomes []shift.Outcome) string {
	rows := make([][]string, 0, len(outcomes))
	for i, o := range outcomes {
		rows = append(rows, []string{
			fmt.Sprint(i),
			fmt.Sprint(utf8.RuneCountInString(o.Row)),
			o.Reason.String(),
			o.Row,
		})
	}
	return renderTable(
		[]string{"Row", "Length", "Status", "Text"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	)
}
