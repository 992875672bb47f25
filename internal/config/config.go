package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Layout contains row reconstruction settings.
type Layout struct {
	RowThreshold float64 `toml:"row_threshold"`
	Clustering   string  `toml:"clustering"`
}

// Parse contains row filtering and cleaning settings.
type Parse struct {
	MinRowLength int    `toml:"min_row_length"`
	StripGlyphs  string `toml:"strip_glyphs"`
	Folding      string `toml:"folding"`
}

// Calendar contains the fields stamped on every shift.
type Calendar struct {
	Summary   string `toml:"summary"`
	TimeZone  string `toml:"timezone"`
	UTCOffset string `toml:"utc_offset"`
}

// OCR contains Tesseract settings used for image input.
type OCR struct {
	Language    string `toml:"language"`
	PageSegMode string `toml:"page_seg_mode"`
}

// Config encapsulates all configuration values for shiftcal.
type Config struct {
	Layout   Layout   `toml:"layout"`
	Parse    Parse    `toml:"parse"`
	Calendar Calendar `toml:"calendar"`
	OCR      OCR      `toml:"ocr"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shiftcal/config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// searches the default locations. A missing file is not an error: the
// defaults are returned and exists is false.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	resolved, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if !exists {
		c := Default()
		c.normalize()
		if err := c.Validate(); err != nil {
			return nil, "", false, err
		}
		return &c, resolved, false, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", false, fmt.Errorf("read config: %w", err)
	}
	cfg, err = ParseBytes(data)
	if err != nil {
		return nil, "", false, fmt.Errorf("%s: %w", resolved, err)
	}
	return cfg, resolved, true, nil
}

// ParseBytes decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func ParseBytes(data []byte) (*Config, error) {
	c := Default()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shiftcal.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Layout.Clustering = strings.ToLower(strings.TrimSpace(c.Layout.Clustering))
	c.Calendar.Summary = strings.TrimSpace(c.Calendar.Summary)
	c.Calendar.TimeZone = strings.TrimSpace(c.Calendar.TimeZone)
	c.Calendar.UTCOffset = strings.TrimSpace(c.Calendar.UTCOffset)
	c.Parse.Folding = strings.ToLower(strings.TrimSpace(c.Parse.Folding))
	c.OCR.Language = strings.TrimSpace(c.OCR.Language)
	c.OCR.PageSegMode = strings.ToLower(strings.TrimSpace(c.OCR.PageSegMode))
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// Sample returns the commented sample configuration.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
