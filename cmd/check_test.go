package cmd

import (
	"testing"

	"streamc/report"
)

func TestCheckSource(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	if code := checkSource("valid", "int a;\nifstream f(\"x.txt\");\nf.close();\n", false); code != 0 {
		t.Errorf("want exit code 0 for valid source, got %d", code)
	}

	if code := checkSource("invalid", "int a\n", false); code != 1 {
		t.Errorf("want exit code 1 for invalid source, got %d", code)
	}

	// The embedded sample deliberately fails on its unterminated file
	// operation.
	if code := checkSource("demo", demoSource, false); code != 1 {
		t.Errorf("want exit code 1 for the demo source, got %d", code)
	}
}
