package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"librarian/internal/textutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and database location configuration.
type Paths struct {
	LibraryDir   string `toml:"library_dir"`
	MagazineDir  string `toml:"magazine_dir"`
	LogDir       string `toml:"log_dir"`
	DatabasePath string `toml:"database_path"`
}

// Scanning contains configuration for library and magazine scans.
type Scanning struct {
	BookTypes string `toml:"book_types"`
	MagTypes  string `toml:"mag_types"`
}

// Magazines contains configuration for issue recognition and filing.
type Magazines struct {
	DestFolder   string `toml:"dest_folder"`
	DestFile     string `toml:"dest_file"`
	// Rename moves scanned issues into the destination pattern paths.
	Rename       bool   `toml:"rename"`
	IssueNouns   string `toml:"issue_nouns"`
	VolumeNouns  string `toml:"volume_nouns"`
	DateLanguage string `toml:"date_language"`
}

// Matching contains fuzzy-match thresholds for the book matcher. Values are
// percentages from 0 to 100.
type Matching struct {
	NameRatio    int `toml:"name_ratio"`
	NamePartial  int `toml:"name_partial"`
	NamePartName int `toml:"name_partname"`
	// NoSplitTitles lists title prefixes that must never be split at a
	// colon, like "revenge of the" in "Star Wars: Revenge of the Sith".
	NoSplitTitles string `toml:"no_split_titles"`
}

// Authors contains configuration for author name handling.
type Authors struct {
	NamePostfixes string `toml:"name_postfixes"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for librarian.
//
// Configuration sections by subsystem:
//   - Paths: library/magazine roots and SQLite database location
//   - Scanning: file extensions recognized as books or magazine issues
//   - Magazines: issue nouns, month-name language, destination patterns
//   - Matching: fuzzy thresholds for matching scanned books to the catalog
//   - Authors: postfix words that keep "Surname, Jr" style names intact
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Scanning  Scanning  `toml:"scanning"`
	Magazines Magazines `toml:"magazines"`
	Matching  Matching  `toml:"matching"`
	Authors   Authors   `toml:"authors"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/librarian/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("librarian.toml")
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

// EnsureDirectories creates required directories. LibraryDir and MagazineDir
// are created on a best-effort basis so commands can run when external
// storage is temporarily unavailable.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, filepath.Dir(c.Paths.DatabasePath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	for _, dir := range []string{c.Paths.LibraryDir, c.Paths.MagazineDir} {
		if strings.TrimSpace(dir) != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
	}
	return nil
}

// IssueNouns returns the configured issue noun tokens as a list.
func (c *Config) IssueNouns() []string {
	return textutil.List(strings.ToLower(c.Magazines.IssueNouns))
}

// VolumeNouns returns the configured volume noun tokens as a list.
func (c *Config) VolumeNouns() []string {
	return textutil.List(strings.ToLower(c.Magazines.VolumeNouns))
}

// NamePostfixes returns the configured author postfix words as a list.
func (c *Config) NamePostfixes() []string {
	return textutil.List(strings.ToLower(c.Authors.NamePostfixes))
}

// NoSplitTitles returns the configured no-split title prefixes as a list.
func (c *Config) NoSplitTitles() []string {
	return textutil.List(strings.ToLower(c.Matching.NoSplitTitles))
}

// BookTypes returns the configured book file extensions, without dots.
func (c *Config) BookTypes() []string {
	return extensionList(c.Scanning.BookTypes)
}

// MagTypes returns the configured magazine file extensions, without dots.
func (c *Config) MagTypes() []string {
	return extensionList(c.Scanning.MagTypes)
}

func extensionList(value string) []string {
	items := textutil.List(strings.ToLower(value))
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimPrefix(item, "."))
	}
	return out
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
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
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
