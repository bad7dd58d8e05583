// Package dataset provides the sample catalog, resolver, and navigator used
// to browse a misleading-chart QA dataset.
package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// catalogExts are the figure file extensions recognized by the catalog scan.
var catalogExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Catalog is the immutable, sorted list of sample identifiers discovered
// under the figures root. An identifier is a figure's path relative to that
// root with the extension stripped, always using forward slashes.
type Catalog struct {
	ids []string
}

// NewCatalog builds a catalog from the given identifiers, sorting and
// deduplicating them.
func NewCatalog(ids []string) Catalog {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return fromSet(seen)
}

// Scan walks figuresRoot recursively and collects an identifier for every
// image file found. Unrelated files are ignored. The returned catalog may be
// empty; an error is only returned when the root itself cannot be walked.
func Scan(figuresRoot string) (Catalog, error) {
	seen := make(map[string]bool)

	err := filepath.WalkDir(figuresRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !catalogExts[ext] {
			return nil
		}
		rel, err := filepath.Rel(figuresRoot, path)
		if err != nil {
			return err
		}
		id := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		seen[id] = true
		return nil
	})
	if err != nil {
		return Catalog{}, fmt.Errorf("scan figures root %s: %w", figuresRoot, err)
	}

	return fromSet(seen), nil
}

func fromSet(seen map[string]bool) Catalog {
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Catalog{ids: ids}
}

// Len returns the number of samples in the catalog.
func (c Catalog) Len() int {
	return len(c.ids)
}

// At returns the identifier at index i.
func (c Catalog) At(i int) string {
	return c.ids[i]
}

// IDs returns a copy of the identifier list, in catalog order.
func (c Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// IndexOf returns the position of id in the catalog.
func (c Catalog) IndexOf(id string) (int, bool) {
	i := sort.SearchStrings(c.ids, id)
	if i < len(c.ids) && c.ids[i] == id {
		return i, true
	}
	return 0, false
}
