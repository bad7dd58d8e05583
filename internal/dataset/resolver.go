package dataset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chartqa-viewer/internal/imaging"
)

// figureExts is the lookup priority for the primary (misleading) figure.
var figureExts = []string{".jpeg", ".jpg", ".png"}

// screenshotExts is the lookup priority for the companion screenshot. The
// identifier is tried directly under the screenshots root first, then under
// its code_original subdirectory. Changing either order changes which file
// wins when duplicates exist.
var screenshotExts = []string{".jpg", ".jpeg", ".png"}

// Roots names the four directories that make up a dataset. Each mirrors the
// same identifier namespace.
type Roots struct {
	Figures     string
	Screenshots string
	Data        string
	QA          string
}

// Location holds the resolved artifact paths for one identifier, without
// loading any file contents. An empty path means no candidate file exists.
type Location struct {
	FigurePath     string
	ScreenshotPath string
	DataPath       string
	QAPath         string
}

// Sample is the fully loaded bundle for one identifier. Images are nil when
// absent; a located-but-undecodable image keeps its path and records the
// decode error. Table and QA are always well-formed, falling back to
// placeholders when the companion file is missing or unparsable.
type Sample struct {
	ID string

	FigurePath string
	Figure     image.Image
	FigureErr  error

	ScreenshotPath string
	Screenshot     image.Image
	ScreenshotErr  error

	DataPath string
	Data     Table
	DataErr  error

	QAPath string
	QA     Annotation
	QAErr  error
}

// EmptySample returns the degenerate sample used when the catalog is empty.
func EmptySample() Sample {
	return Sample{Data: Table{}, QA: EmptyAnnotation()}
}

// Resolver locates and loads the four artifacts of a sample. It performs
// only filesystem reads and is safe for concurrent use.
type Resolver struct {
	roots Roots
}

// NewResolver creates a resolver over the given dataset roots.
func NewResolver(roots Roots) *Resolver {
	return &Resolver{roots: roots}
}

// Locate resolves the candidate paths for id without reading file contents.
func (r *Resolver) Locate(id string) Location {
	loc := Location{
		FigurePath:     firstExisting(r.figureCandidates(id)),
		ScreenshotPath: firstExisting(r.screenshotCandidates(id)),
	}

	if p := filepath.Join(r.roots.Data, id+".csv"); fileExists(p) {
		loc.DataPath = p
	}
	if p := filepath.Join(r.roots.QA, id+".json"); fileExists(p) {
		loc.QAPath = p
	}
	return loc
}

// Resolve builds the sample bundle for one identifier. Missing companions
// become placeholders, never errors.
func (r *Resolver) Resolve(id string) Sample {
	loc := r.Locate(id)
	s := Sample{
		ID:             id,
		FigurePath:     loc.FigurePath,
		ScreenshotPath: loc.ScreenshotPath,
		DataPath:       loc.DataPath,
		QAPath:         loc.QAPath,
	}

	if s.FigurePath != "" {
		s.Figure, s.FigureErr = imaging.Load(s.FigurePath)
	}
	if s.ScreenshotPath != "" {
		s.Screenshot, s.ScreenshotErr = imaging.Load(s.ScreenshotPath)
	}

	s.Data, s.DataErr = r.loadTable(loc.DataPath)
	s.QA, s.QAErr = r.loadAnnotation(loc.QAPath)
	return s
}

func (r *Resolver) loadTable(path string) (Table, error) {
	if path == "" {
		return InfoTable("No CSV file found"), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return ErrorTable(fmt.Sprintf("Could not read CSV: %v", err)), err
	}
	defer f.Close()

	tbl, err := ParseTable(f)
	if err != nil {
		return ErrorTable(fmt.Sprintf("Could not read CSV: %v", err)), err
	}
	return tbl, nil
}

func (r *Resolver) loadAnnotation(path string) (Annotation, error) {
	if path == "" {
		return InfoAnnotation("No JSON file found"), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ErrorAnnotation(fmt.Sprintf("Could not read JSON: %v", err)), err
	}

	ann, err := ParseAnnotation(data)
	if err != nil {
		return ErrorAnnotation(fmt.Sprintf("Could not read JSON: %v", err)), err
	}
	return ann, nil
}

func (r *Resolver) figureCandidates(id string) []string {
	paths := make([]string, 0, len(figureExts))
	for _, ext := range figureExts {
		paths = append(paths, filepath.Join(r.roots.Figures, id+ext))
	}
	return paths
}

func (r *Resolver) screenshotCandidates(id string) []string {
	paths := make([]string, 0, 2*len(screenshotExts))
	for _, ext := range screenshotExts {
		paths = append(paths, filepath.Join(r.roots.Screenshots, id+ext))
	}
	for _, ext := range screenshotExts {
		paths = append(paths, filepath.Join(r.roots.Screenshots, "code_original", id+ext))
	}
	return paths
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
