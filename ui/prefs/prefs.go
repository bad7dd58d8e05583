// Package prefs persists viewer session preferences between runs.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "preferences.json"

// values is the serialized preference set.
type values struct {
	DatasetDir   string `json:"dataset_dir,omitempty"`
	ConfigPath   string `json:"config_path,omitempty"`
	LastSampleID string `json:"last_sample_id,omitempty"`
	WindowWidth  int    `json:"window_width,omitempty"`
	WindowHeight int    `json:"window_height,omitempty"`
}

// Prefs remembers the last browsing session so the viewer reopens where the
// user left off. Safe for concurrent use; the hot-reload watcher saves from
// a background goroutine.
type Prefs struct {
	mu    sync.RWMutex
	vals  values
	path  string
	saved values
}

// Load reads preferences from ~/.config/chartqa-viewer/preferences.json.
// Returns zero-valued prefs if the file doesn't exist.
func Load() *Prefs {
	p := &Prefs{}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	p.path = filepath.Join(configDir, "chartqa-viewer", prefsFile)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.vals)
	p.saved = p.vals
	return p
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.MarshalIndent(p.vals, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return err
	}
	p.saved = p.vals
	return nil
}

// Changed reports whether the preferences differ from what was last
// persisted.
func (p *Prefs) Changed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vals != p.saved
}

// DatasetDir returns the last opened dataset directory.
func (p *Prefs) DatasetDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vals.DatasetDir
}

// SetDatasetDir stores the last opened dataset directory.
func (p *Prefs) SetDatasetDir(dir string) {
	p.mu.Lock()
	p.vals.DatasetDir = dir
	p.mu.Unlock()
}

// ConfigPath returns the last used config file path.
func (p *Prefs) ConfigPath() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vals.ConfigPath
}

// SetConfigPath stores the last used config file path.
func (p *Prefs) SetConfigPath(path string) {
	p.mu.Lock()
	p.vals.ConfigPath = path
	p.mu.Unlock()
}

// LastSampleID returns the identifier of the last viewed sample.
func (p *Prefs) LastSampleID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vals.LastSampleID
}

// SetLastSampleID stores the identifier of the last viewed sample.
func (p *Prefs) SetLastSampleID(id string) {
	p.mu.Lock()
	p.vals.LastSampleID = id
	p.mu.Unlock()
}

// WindowSize returns the persisted window size, or (0, 0) if unset.
func (p *Prefs) WindowSize() (int, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vals.WindowWidth, p.vals.WindowHeight
}

// SetWindowSize stores the window size.
func (p *Prefs) SetWindowSize(w, h int) {
	p.mu.Lock()
	p.vals.WindowWidth = w
	p.vals.WindowHeight = h
	p.mu.Unlock()
}
