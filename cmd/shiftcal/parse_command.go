package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/shiftcal"
	"github.com/tsawler/shiftcal/calendar"
	"github.com/tsawler/shiftcal/model"
	"github.com/tsawler/shiftcal/notify"
)

type parseOptions struct {
	json    bool
	events  bool
	message bool
}

// parseResult is the JSON document printed by parse
type parseResult struct {
	Source   string        `json:"source"`
	Shifts   []model.Shift `json:"shifts"`
	Warnings []warningJSON `json:"warnings,omitempty"`
}

type warningJSON struct {
	Kind    string `json:"kind"`
	Row     int    `json:"row"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Extract shifts from a Vision JSON, hOCR, or image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.events && opts.message {
				return fmt.Errorf("--events and --message cannot be combined")
			}
			return runParse(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print JSON even on a terminal")
	cmd.Flags().BoolVar(&opts.events, "events", false, "Print Google Calendar event bodies")
	cmd.Flags().BoolVar(&opts.message, "message", false, "Print the chat message for the result")
	return cmd
}

func runParse(cmd *cobra.Command, ctx *commandContext, path string, opts parseOptions) error {
	source := filepath.Base(path)

	ext, err := ctx.extractor(path)
	if err != nil {
		return err
	}

	shifts, warnings, err := ext.Shifts()
	if err != nil {
		if opts.message {
			fmt.Fprintln(cmd.OutOrStdout(), notify.Failure(source, err))
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.message:
		fmt.Fprint(out, notify.Message(source, shifts, warnings))
		return nil

	case opts.events:
		events, err := calendar.FromShifts(shifts)
		if err != nil {
			return err
		}
		return writeJSON(cmd, events)

	case opts.json || !isTerminal(out):
		return writeJSON(cmd, parseResult{
			Source:   source,
			Shifts:   shifts,
			Warnings: toWarningJSON(warnings),
		})
	}

	if len(shifts) == 0 {
		fmt.Fprintf(out, "No shifts found in %s\n", source)
	} else {
		fmt.Fprintln(out, renderShiftTable(shifts))
	}
	if len(warnings) > 0 {
		fmt.Fprintln(out, "Warnings:")
		for _, w := range warnings {
			fmt.Fprintf(out, "  %s\n", w)
		}
	}
	return nil
}

func renderShiftTable(shifts []model.Shift) string {
	rows := make([][]string, 0, len(shifts))
	for i, s := range shifts {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			s.StartDate(),
			s.StartTime(),
			s.EndTime(),
			s.Summary,
			s.TimeZone,
		})
	}
	return renderTable(
		[]string{"#", "Date", "Start", "End", "Summary", "Time Zone"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func toWarningJSON(warnings []shiftcal.Warning) []warningJSON {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]warningJSON, len(warnings))
	for i, w := range warnings {
		out[i] = warningJSON{
			Kind:    strings.ReplaceAll(w.Kind.String(), " ", "_"),
			Row:     w.Row,
			Text:    w.Text,
			Message: w.Message,
		}
	}
	return out
}
