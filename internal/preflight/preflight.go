package preflight

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the input track and, when output is non-empty, the
// directory it will be written to.
func RunAll(input, output string) []Result {
	results := []Result{CheckInputFile("Input track", input)}
	if output == "" {
		return results
	}
	results = append(results, CheckOutputTarget("Output file", input, output))
	results = append(results, CheckDirectoryAccess("Output directory", filepath.Dir(output)))
	return results
}

// Failed returns an error describing every failed result, or nil.
func Failed(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("preflight failed: %s", strings.Join(failed, "; "))
}
