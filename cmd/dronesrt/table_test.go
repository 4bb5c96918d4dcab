package main

import (
	"strings"
	"testing"
)

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable([]string{"Height (b)", "Count"}, [][]string{{"12.3m", "1"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "Height (b)") {
		t.Fatalf("expected header case preserved, got:\n%s", out)
	}
	if strings.Contains(out, "HEIGHT") {
		t.Fatalf("header should not be upper-cased, got:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil)
	if !strings.Contains(out, "only") {
		t.Fatalf("expected row value in output, got:\n%s", out)
	}
	if renderTable(nil, [][]string{{"x"}}, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
