package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dronesrt/internal/logging"
	"dronesrt/internal/preflight"
	"dronesrt/internal/subtitles"
	"dronesrt/internal/telemetry"
)

// inspectRow is what one subtitle entry carries, one column per field.
type inspectRow struct {
	Index      int    `json:"index" yaml:"index"`
	Start      string `json:"start" yaml:"start"`
	End        string `json:"end" yaml:"end"`
	Barometer  string `json:"barometer,omitempty" yaml:"barometer,omitempty"`
	Ultrasonic string `json:"ultrasonic,omitempty" yaml:"ultrasonic,omitempty"`
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	Time       string `json:"time,omitempty" yaml:"time,omitempty"`
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Speed      string `json:"speed,omitempty" yaml:"speed,omitempty"`
}

func (r *inspectRow) set(kind telemetry.FieldKind, value string) {
	var dst *string
	switch kind {
	case telemetry.FieldHeightBarometer:
		dst = &r.Barometer
	case telemetry.FieldHeightUltrasonic:
		dst = &r.Ultrasonic
	case telemetry.FieldDate:
		dst = &r.Date
	case telemetry.FieldTime:
		dst = &r.Time
	case telemetry.FieldDuration:
		dst = &r.Duration
	case telemetry.FieldSpeed:
		dst = &r.Speed
	default:
		return
	}
	if *dst == "" {
		*dst = value
	}
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect <input.srt>",
		Short: "Show the telemetry each subtitle entry carries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(formatFlag)
			if err != nil {
				return err
			}
			if limit < 0 {
				return errors.New("--limit must not be negative")
			}
			input := args[0]
			if err := preflight.Failed(preflight.RunAll(input, "")); err != nil {
				return err
			}
			track, err := subtitles.Open(input)
			if err != nil {
				return err
			}
			rows, err := inspectTrack(track, limit)
			if err != nil {
				return err
			}
			if logger, closeLog, err := ctx.logger(cmd); err == nil {
				logger.Debug("track inspected",
					logging.String(logging.FieldInput, input),
					logging.Int("entries", track.Len()),
					logging.Int("rows", len(rows)),
				)
				closeLog()
			}

			switch format {
			case formatJSON:
				return writeJSON(cmd, rows)
			case formatYAML:
				return writeYAML(cmd, rows)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), renderInspectTable(rows))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N entries (0 shows all)")
	return cmd
}

// inspectTrack runs every field over the track's entries in order with a
// single processor, so duration and speed read as they would in a real run.
// Entries are not modified.
func inspectTrack(track *subtitles.Track, limit int) ([]inspectRow, error) {
	processor, err := telemetry.NewProcessor(telemetry.AllSelected(false))
	if err != nil {
		return nil, err
	}
	entries := track.Entries()
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	rows := make([]inspectRow, 0, len(entries))
	for _, entry := range entries {
		row := inspectRow{
			Index: entry.Index(),
			Start: subtitles.FormatTimestamp(entry.Start()),
			End:   subtitles.FormatTimestamp(entry.End()),
		}
		for _, frag := range processor.Fragments(entry.Text()) {
			row.set(frag.Kind, frag.Value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func renderInspectTable(rows []inspectRow) string {
	headers := []string{"#", "Start", "End", "Height (b)", "Height (u)", "Date", "Time", "Duration", "Speed"}
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{
			strconv.Itoa(r.Index), r.Start, r.End,
			r.Barometer, r.Ultrasonic, r.Date, r.Time, r.Duration, r.Speed,
		})
	}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight, alignRight}
	return renderTable(headers, body, aligns)
}
