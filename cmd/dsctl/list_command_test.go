package main

import (
	"strings"
	"testing"
)

func TestListShowsAllSamples(t *testing.T) {
	dir := newTestDataset(t)

	out, err := runDsctl(t, "--dataset", dir, "list")
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}

	requireContains(t, out, "full")
	requireContains(t, out, "bare")
	requireContains(t, out, "2 of 2 samples shown")
}

func TestListMissingFiltersCompleteSamples(t *testing.T) {
	dir := newTestDataset(t)

	out, err := runDsctl(t, "--dataset", dir, "list", "--missing")
	if err != nil {
		t.Fatalf("list --missing: %v\n%s", err, out)
	}

	requireContains(t, out, "bare")
	requireContains(t, out, "1 of 2 samples shown")
	// The complete sample appears only in the summary, not as a row.
	if strings.Contains(out, "│ full") || strings.Contains(out, "| full") {
		t.Fatalf("complete sample listed:\n%s", out)
	}
}

func TestListFailsOnMissingDataset(t *testing.T) {
	if out, err := runDsctl(t, "--dataset", t.TempDir(), "list"); err == nil {
		t.Fatalf("expected error for dataset without figures dir:\n%s", out)
	}
}
