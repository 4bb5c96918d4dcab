package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dronesrt/internal/fileutil"
	"dronesrt/internal/logging"
	"dronesrt/internal/preflight"
	"dronesrt/internal/subtitles"
	"dronesrt/internal/track"
)

func newTrackCommand(ctx *commandContext) *cobra.Command {
	var output string
	var name string

	cmd := &cobra.Command{
		Use:   "track <input.srt>",
		Short: "Export the GPS fixes of a telemetry track as GPX",
		Long: "Export the GPS fixes of a telemetry track as a GPX 1.1 flight path.\n\n" +
			"Point elevations come from the barometer height, which is measured from\n" +
			"the take-off point rather than from sea level.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			target := strings.TrimSpace(output)
			if target == "" {
				target = strings.TrimSuffix(input, filepath.Ext(input)) + ".gpx"
			}
			trackName := strings.TrimSpace(name)
			if trackName == "" {
				trackName = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			}

			logger, closeLog, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			logger = logging.NewComponentLogger(logger, "track")

			if err := preflight.Failed(preflight.RunAll(input, target)); err != nil {
				return err
			}
			subs, err := subtitles.Open(input)
			if err != nil {
				return err
			}
			points, err := track.Collect(subs.TextEntries())
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			summary := track.Summarize(points, subs.Len())
			if summary.Skipped > 0 {
				logging.WarnWithContext(logger, "entries without gps fix skipped", "track_entries_skipped",
					logging.Int("skipped", summary.Skipped),
					logging.String(logging.FieldImpact, "the flight path has gaps where those entries were"),
				)
			}

			err = fileutil.WriteLocked(target, 0o644, func(w io.Writer) error {
				return track.Write(w, trackName, points)
			})
			if err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			logger.Info("gpx written",
				logging.String(logging.FieldOutput, target),
				logging.Int("points", summary.Points),
				logging.Float64("distance_km", summary.DistanceKm),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d points (%.2f km, %s) to %s\n",
				summary.Points, summary.DistanceKm, summary.Elapsed, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination GPX file (default <input>.gpx)")
	cmd.Flags().StringVar(&name, "name", "", "Track name (default input base name)")
	return cmd
}
