// Package config loads viewer configuration from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Dataset names the four root directories of a dataset. Each mirrors the
// same relative-path identifier namespace.
type Dataset struct {
	FiguresDir     string `toml:"figures_dir"`
	ScreenshotsDir string `toml:"screenshots_dir"`
	DataDir        string `toml:"data_dir"`
	QADir          string `toml:"qa_dir"`
}

// UI contains presentation options.
type UI struct {
	ImageHeight  int `toml:"image_height"`
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
}

// Config is the root configuration structure.
type Config struct {
	Dataset Dataset `toml:"dataset"`
	UI      UI      `toml:"ui"`
}

// Default returns the configuration for the conventional dataset layout
// rooted at datasetDir: figures/, data/, qa/, and
// screenshots/non-misleading/.
func Default(datasetDir string) Config {
	return Config{
		Dataset: Dataset{
			FiguresDir:     filepath.Join(datasetDir, "figures"),
			ScreenshotsDir: filepath.Join(datasetDir, "screenshots", "non-misleading"),
			DataDir:        filepath.Join(datasetDir, "data"),
			QADir:          filepath.Join(datasetDir, "qa"),
		},
		UI: UI{
			ImageHeight:  224,
			WindowWidth:  1280,
			WindowHeight: 800,
		},
	}
}

// Load reads a TOML config file. Relative paths are resolved against the
// file's directory; unset fields fall back to the conventional layout rooted
// there.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	def := Default(dir)

	cfg.Dataset.FiguresDir = resolvePath(dir, cfg.Dataset.FiguresDir, def.Dataset.FiguresDir)
	cfg.Dataset.ScreenshotsDir = resolvePath(dir, cfg.Dataset.ScreenshotsDir, def.Dataset.ScreenshotsDir)
	cfg.Dataset.DataDir = resolvePath(dir, cfg.Dataset.DataDir, def.Dataset.DataDir)
	cfg.Dataset.QADir = resolvePath(dir, cfg.Dataset.QADir, def.Dataset.QADir)

	if cfg.UI.ImageHeight <= 0 {
		cfg.UI.ImageHeight = def.UI.ImageHeight
	}
	if cfg.UI.WindowWidth <= 0 {
		cfg.UI.WindowWidth = def.UI.WindowWidth
	}
	if cfg.UI.WindowHeight <= 0 {
		cfg.UI.WindowHeight = def.UI.WindowHeight
	}
	return cfg, nil
}

// resolvePath anchors a relative configured path at base, substituting def
// when the path is unset.
func resolvePath(base, p, def string) string {
	if p == "" {
		return def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Validate checks the one fatal startup condition: the figures root must be
// an existing directory. The other roots may be absent; lookups in them
// resolve to placeholders.
func (c Config) Validate() error {
	info, err := os.Stat(c.Dataset.FiguresDir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("figures directory %s does not exist", c.Dataset.FiguresDir)
	}
	if err != nil {
		return fmt.Errorf("figures directory %s: %w", c.Dataset.FiguresDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("figures path %s is not a directory", c.Dataset.FiguresDir)
	}
	return nil
}

// WriteSample writes the annotated sample configuration to path.
func WriteSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}
