package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dronesrt/internal/config"
	"dronesrt/internal/fileutil"
	"dronesrt/internal/logging"
	"dronesrt/internal/preflight"
	"dronesrt/internal/subtitles"
	"dronesrt/internal/telemetry"
)

type customizeOptions struct {
	input      string
	output     string
	barometer  bool
	ultrasonic bool
	date       bool
	time       bool
	duration   bool
	speed      bool
	label      bool
	backup     bool
	dryRun     bool
	summary    bool
}

func newCustomizeCommand(ctx *commandContext) *cobra.Command {
	var opts customizeOptions

	cmd := &cobra.Command{
		Use:   "customize",
		Short: "Rewrite a telemetry track keeping only the selected fields",
		Long: "Rewrite a telemetry subtitle track so every entry shows only the selected fields.\n\n" +
			"At least one of --barometer, --ultrasonic, --date, --time, --duration or --speed\n" +
			"must be given (or enabled in the [fields] section of the config file).",
		Example: "  dronesrt customize -i DJI_0001.SRT -b -s -D -l",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomize(cmd, ctx, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Telemetry subtitle track to read")
	flags.StringVarP(&opts.output, "output", "o", "", "Destination track (default <input><suffix>.srt)")
	flags.BoolVarP(&opts.barometer, "barometer", "b", false, "Keep the barometer height")
	flags.BoolVarP(&opts.ultrasonic, "ultrasonic", "u", false, "Keep the ultrasonic height")
	flags.BoolVarP(&opts.date, "date", "d", false, "Keep the date")
	flags.BoolVarP(&opts.time, "time", "t", false, "Keep the clock time")
	flags.BoolVarP(&opts.duration, "duration", "D", false, "Show elapsed flight time")
	flags.BoolVarP(&opts.speed, "speed", "s", false, "Show ground speed derived from GPS fixes")
	flags.BoolVarP(&opts.label, "label", "l", false, "Prefix each value with a label")
	flags.BoolVar(&opts.backup, "backup", false, "Copy an existing output file to <output>.bak first")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Process the track without writing the output")
	flags.BoolVar(&opts.summary, "summary", false, "Print a table of run statistics")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCustomize(cmd *cobra.Command, ctx *commandContext, opts customizeOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	selection := resolveSelection(cmd, cfg.Fields, opts)
	if err := selection.Validate(); err != nil {
		cmd.PrintErrln(cmd.UsageString())
		return err
	}

	logger, closeLog, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logging.NewComponentLogger(logger, "customize")

	input := strings.TrimSpace(opts.input)
	output := strings.TrimSpace(opts.output)
	if output == "" {
		output = cfg.OutputPath(input)
	}
	checkTarget := output
	if opts.dryRun {
		checkTarget = ""
	}
	if err := preflight.Failed(preflight.RunAll(input, checkTarget)); err != nil {
		return err
	}

	track, err := subtitles.Open(input)
	if err != nil {
		return err
	}
	logger.Info("track loaded",
		logging.String(logging.FieldInput, input),
		logging.Int("entries", track.Len()),
		logging.String("fields", fieldList(selection)),
	)

	update, finish := entryProgress(cmd, track.Len(), "customizing")
	processor, err := telemetry.NewProcessor(selection,
		telemetry.WithLogger(logger),
		telemetry.WithProgress(update),
	)
	if err != nil {
		return err
	}
	err = processor.Process(ctx.runContext(cmd), track.TextEntries())
	finish()
	if err != nil {
		return fmt.Errorf("process %s: %w", input, err)
	}
	stats := processor.Stats()

	out := cmd.OutOrStdout()
	if opts.dryRun {
		fmt.Fprintf(out, "Dry run: %d entries processed, nothing written\n", stats.Entries)
		return writeSummary(out, stats, opts.summary)
	}

	backup := cfg.Output.Backup
	if cmd.Flags().Changed("backup") {
		backup = opts.backup
	}
	if backup {
		target, copied, err := fileutil.Backup(output, config.BackupExtension)
		if err != nil {
			return err
		}
		if copied {
			logger.Info("previous output backed up", logging.String("backup", target))
		}
	}

	if err := fileutil.WriteLocked(output, 0o644, track.Write); err != nil {
		if errors.Is(err, fileutil.ErrLocked) {
			logging.ErrorWithContext(logger, "output busy", "output_locked",
				logging.String(logging.FieldOutput, output),
				logging.String(logging.FieldErrorHint, "wait for the other dronesrt run to finish or remove a stale "+fileutil.LockPath(output)),
			)
		}
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("customized track written",
		logging.String(logging.FieldOutput, output),
		logging.Int("entries", stats.Entries),
	)

	fmt.Fprintf(out, "Wrote %d entries to %s\n", stats.Entries, output)
	return writeSummary(out, stats, opts.summary)
}

// resolveSelection starts from the configured fields and lets every flag the
// user set explicitly override its counterpart.
func resolveSelection(cmd *cobra.Command, fields config.Fields, opts customizeOptions) telemetry.Selection {
	sel := telemetry.Selection{
		Barometer:  fields.Barometer,
		Ultrasonic: fields.Ultrasonic,
		Date:       fields.Date,
		Time:       fields.Time,
		Duration:   fields.Duration,
		Speed:      fields.Speed,
		Label:      fields.Label,
	}
	flags := cmd.Flags()
	overrides := []struct {
		name  string
		value bool
		dst   *bool
	}{
		{"barometer", opts.barometer, &sel.Barometer},
		{"ultrasonic", opts.ultrasonic, &sel.Ultrasonic},
		{"date", opts.date, &sel.Date},
		{"time", opts.time, &sel.Time},
		{"duration", opts.duration, &sel.Duration},
		{"speed", opts.speed, &sel.Speed},
		{"label", opts.label, &sel.Label},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.value
		}
	}
	return sel
}

func fieldList(sel telemetry.Selection) string {
	fields := sel.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

func writeSummary(w io.Writer, stats telemetry.Stats, enabled bool) error {
	if !enabled {
		return nil
	}
	rows := [][]string{
		{"Entries", strconv.Itoa(stats.Entries)},
		{"Empty entries", strconv.Itoa(stats.EmptyEntries)},
	}
	for _, kind := range telemetry.AllFields() {
		rows = append(rows, []string{string(kind), strconv.Itoa(stats.Fragments[kind])})
	}
	rows = append(rows,
		[]string{"Malformed GPS tokens", strconv.Itoa(stats.MalformedGPS)},
		[]string{"Malformed height tokens", strconv.Itoa(stats.MalformedHeight)},
	)
	_, err := fmt.Fprintln(w, renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	return err
}
