package main

import (
	"path/filepath"
	"testing"
)

func TestShowResolvedSample(t *testing.T) {
	dir := newTestDataset(t)

	out, err := runDsctl(t, "--dataset", dir, "show", "full")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}

	requireContains(t, out, "Sample full (2 / 2)")
	requireContains(t, out, "2021")
	requireContains(t, out, "Numeric columns")
	requireContains(t, out, `"question": "q"`)
}

func TestShowPlaceholdersForBareSample(t *testing.T) {
	dir := newTestDataset(t)

	out, err := runDsctl(t, "--dataset", dir, "show", "bare")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}

	requireContains(t, out, "Screenshot: (missing)")
	requireContains(t, out, "No CSV file found")
	requireContains(t, out, "No JSON file found")
}

func TestShowUnknownSample(t *testing.T) {
	dir := newTestDataset(t)

	if out, err := runDsctl(t, "--dataset", dir, "show", "nope"); err == nil {
		t.Fatalf("expected error for unknown sample:\n%s", out)
	}
}

func TestConfigInitWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")

	out, err := runDsctl(t, "config", "init", path)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote "+path)
}
