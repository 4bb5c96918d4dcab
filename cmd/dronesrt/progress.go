package main

import (
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// entryProgress reports per-entry progress on stderr when stderr is a
// terminal. The returned callback and finish function are always safe to call.
func entryProgress(cmd *cobra.Command, total int, description string) (func(done, total int), func()) {
	w := cmd.ErrOrStderr()
	if total == 0 || !isTerminal(w) {
		return func(int, int) {}, func() {}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	update := func(done, _ int) {
		_ = bar.Set(done)
	}
	finish := func() {
		_ = bar.Finish()
	}
	return update, finish
}
