package main

import (
	"path/filepath"
	"testing"
)

func TestCheckReportsMissingCompanions(t *testing.T) {
	dir := newTestDataset(t)

	out, err := runDsctl(t, "--dataset", dir, "check")
	if err == nil {
		t.Fatalf("expected failure for incomplete dataset:\n%s", out)
	}

	requireContains(t, out, "bare: no screenshot")
	requireContains(t, out, "bare: no CSV")
	requireContains(t, out, "bare: no JSON")
	requireContains(t, err.Error(), "3 problems")
}

func TestCheckReportsUnparsableCompanions(t *testing.T) {
	dir := newTestDataset(t)
	writeTestPNG(t, filepath.Join(dir, "screenshots", "non-misleading", "bare.png"))
	writeTestFile(t, filepath.Join(dir, "data", "bare.csv"), "a,b\n\"broken\n")
	writeTestFile(t, filepath.Join(dir, "qa", "bare.json"), "{nope")

	out, err := runDsctl(t, "--dataset", dir, "check")
	if err == nil {
		t.Fatalf("expected failure:\n%s", out)
	}

	requireContains(t, out, "bare: CSV parse failed")
	requireContains(t, out, "bare: JSON parse failed")
}

func TestCheckPassesCompleteDataset(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "figures", "only.png"))
	writeTestPNG(t, filepath.Join(dir, "screenshots", "non-misleading", "only.jpg"))
	writeTestFile(t, filepath.Join(dir, "data", "only.csv"), "a\n1\n")
	writeTestFile(t, filepath.Join(dir, "qa", "only.json"), `{"q": "x"}`)

	out, err := runDsctl(t, "--dataset", dir, "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "1 samples, no problems")
}
