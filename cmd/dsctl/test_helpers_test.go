package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runDsctl executes the CLI with args and returns its combined output.
func runDsctl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// newTestDataset lays out a conventional dataset with two samples: "full"
// has every companion, "bare" has only its figure.
func newTestDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeTestPNG(t, filepath.Join(dir, "figures", "full.png"))
	writeTestPNG(t, filepath.Join(dir, "screenshots", "non-misleading", "full.jpg"))
	writeTestFile(t, filepath.Join(dir, "data", "full.csv"), "year,value\n2020,1\n2021,2\n")
	writeTestFile(t, filepath.Join(dir, "qa", "full.json"), `{"question": "q", "answer": "a"}`)

	writeTestPNG(t, filepath.Join(dir, "figures", "bare.png"))

	return dir
}

func requireContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, s)
	}
}
