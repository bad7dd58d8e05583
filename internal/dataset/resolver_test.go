package dataset

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveFigureExtensionPriority(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)
	writePNG(t, filepath.Join(roots.Figures, "chart.jpeg"), 4, 4)

	s := NewResolver(roots).Resolve("chart")
	if !strings.HasSuffix(s.FigurePath, ".jpeg") {
		t.Fatalf("figure path %q, want .jpeg to win over .png", s.FigurePath)
	}
	if s.Figure == nil || s.FigureErr != nil {
		t.Fatalf("figure not decoded: %v", s.FigureErr)
	}
}

func TestResolveScreenshotDirectBeatsCodeOriginal(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)
	writePNG(t, filepath.Join(roots.Screenshots, "chart.png"), 4, 4)
	writePNG(t, filepath.Join(roots.Screenshots, "code_original", "chart.jpg"), 4, 4)

	s := NewResolver(roots).Resolve("chart")
	if strings.Contains(s.ScreenshotPath, "code_original") {
		t.Fatalf("screenshot path %q, want direct match to win", s.ScreenshotPath)
	}
}

func TestResolveScreenshotFallsBackToCodeOriginal(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "sub", "chart.png"), 4, 4)
	writePNG(t, filepath.Join(roots.Screenshots, "code_original", "sub", "chart.jpeg"), 4, 4)

	s := NewResolver(roots).Resolve("sub/chart")
	if !strings.Contains(s.ScreenshotPath, "code_original") {
		t.Fatalf("screenshot path %q, want code_original fallback", s.ScreenshotPath)
	}
	if s.Screenshot == nil {
		t.Fatal("screenshot not decoded")
	}
}

func TestResolveMissingImagesAreAbsent(t *testing.T) {
	roots := newTestRoots(t)

	s := NewResolver(roots).Resolve("ghost")
	if s.FigurePath != "" || s.Figure != nil || s.FigureErr != nil {
		t.Fatalf("missing figure should be absent, got path=%q err=%v", s.FigurePath, s.FigureErr)
	}
	if s.ScreenshotPath != "" || s.Screenshot != nil {
		t.Fatalf("missing screenshot should be absent, got path=%q", s.ScreenshotPath)
	}
}

func TestResolveUndecodableImageIsDistinctFromAbsent(t *testing.T) {
	roots := newTestRoots(t)
	writeFile(t, filepath.Join(roots.Figures, "bad.png"), "this is not an image")

	s := NewResolver(roots).Resolve("bad")
	if s.FigurePath == "" {
		t.Fatal("located path should be kept for undecodable image")
	}
	if s.FigureErr == nil {
		t.Fatal("expected decode error")
	}
	if s.Figure != nil {
		t.Fatal("undecodable image should not yield pixels")
	}
}

func TestResolveMissingCSVPlaceholder(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)

	s := NewResolver(roots).Resolve("chart")
	if s.DataPath != "" || s.DataErr != nil {
		t.Fatalf("missing CSV is not an error, got path=%q err=%v", s.DataPath, s.DataErr)
	}
	if len(s.Data.Columns) != 1 || s.Data.Columns[0] != "Info" {
		t.Fatalf("placeholder columns = %v, want [Info]", s.Data.Columns)
	}
	requireContains(t, s.Data.Rows[0][0], "No CSV file found")
}

func TestResolveMalformedCSVPlaceholder(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)
	writeFile(t, filepath.Join(roots.Data, "chart.csv"), "col1,col2\n\"unterminated,3\n")

	s := NewResolver(roots).Resolve("chart")
	if s.DataErr == nil {
		t.Fatal("expected parse error recorded")
	}
	if len(s.Data.Columns) != 1 || s.Data.Columns[0] != "Error" {
		t.Fatalf("placeholder columns = %v, want [Error]", s.Data.Columns)
	}
	requireContains(t, s.Data.Rows[0][0], "Could not read CSV")
	requireContains(t, s.Data.Rows[0][0], s.DataErr.Error())
}

func TestResolveParsesCSV(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)
	writeFile(t, filepath.Join(roots.Data, "chart.csv"), "year,value\n2020,10\n2021,12\n")

	s := NewResolver(roots).Resolve("chart")
	if s.DataErr != nil {
		t.Fatalf("parse: %v", s.DataErr)
	}
	if len(s.Data.Columns) != 2 || len(s.Data.Rows) != 2 {
		t.Fatalf("got %v / %v", s.Data.Columns, s.Data.Rows)
	}
	if s.Data.Rows[1][1] != "12" {
		t.Fatalf("cell = %q, want 12", s.Data.Rows[1][1])
	}
}

func TestResolveMissingJSONPlaceholder(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)

	s := NewResolver(roots).Resolve("chart")
	m, ok := s.QA.Value.(map[string]any)
	if !ok {
		t.Fatalf("placeholder QA = %T, want map", s.QA.Value)
	}
	requireContains(t, m["Info"].(string), "No JSON file found")
}

func TestResolveMalformedJSONPlaceholder(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)
	writeFile(t, filepath.Join(roots.QA, "chart.json"), "{not json")

	s := NewResolver(roots).Resolve("chart")
	if s.QAErr == nil {
		t.Fatal("expected parse error recorded")
	}
	m, ok := s.QA.Value.(map[string]any)
	if !ok {
		t.Fatalf("placeholder QA = %T, want map", s.QA.Value)
	}
	requireContains(t, m["Error"].(string), "Could not read JSON")
}

func TestResolveParsesJSON(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.png"), 4, 4)
	writeFile(t, filepath.Join(roots.QA, "chart.json"),
		`{"question": "Is the axis truncated?", "answers": ["yes", "no"]}`)

	s := NewResolver(roots).Resolve("chart")
	if s.QAErr != nil {
		t.Fatalf("parse: %v", s.QAErr)
	}
	m := s.QA.Value.(map[string]any)
	if m["question"] != "Is the axis truncated?" {
		t.Fatalf("question = %v", m["question"])
	}
	if answers := m["answers"].([]any); len(answers) != 2 {
		t.Fatalf("answers = %v", answers)
	}
}

func TestLocateReportsPresenceWithoutLoading(t *testing.T) {
	roots := newTestRoots(t)
	writePNG(t, filepath.Join(roots.Figures, "chart.jpg"), 4, 4)
	writeFile(t, filepath.Join(roots.Data, "chart.csv"), "a\n1\n")

	loc := NewResolver(roots).Locate("chart")
	if loc.FigurePath == "" || loc.DataPath == "" {
		t.Fatalf("expected figure and CSV located: %+v", loc)
	}
	if loc.ScreenshotPath != "" || loc.QAPath != "" {
		t.Fatalf("expected screenshot and JSON missing: %+v", loc)
	}
}
