package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScanning()
	c.normalizeMagazines()
	c.normalizeMatching()
	c.normalizeAuthors()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if c.Paths.MagazineDir, err = expandPath(c.Paths.MagazineDir); err != nil {
		return fmt.Errorf("paths.magazine_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		c.Paths.DatabasePath = defaultDatabasePath
	}
	if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeScanning() {
	if strings.TrimSpace(c.Scanning.BookTypes) == "" {
		c.Scanning.BookTypes = defaultBookTypes
	}
	if strings.TrimSpace(c.Scanning.MagTypes) == "" {
		c.Scanning.MagTypes = defaultMagTypes
	}
}

func (c *Config) normalizeMagazines() {
	if strings.TrimSpace(c.Magazines.DestFolder) == "" {
		c.Magazines.DestFolder = defaultMagDestFolder
	}
	if strings.TrimSpace(c.Magazines.DestFile) == "" {
		c.Magazines.DestFile = defaultMagDestFile
	}
	if strings.TrimSpace(c.Magazines.IssueNouns) == "" {
		c.Magazines.IssueNouns = defaultIssueNouns
	}
	if strings.TrimSpace(c.Magazines.VolumeNouns) == "" {
		c.Magazines.VolumeNouns = defaultVolumeNouns
	}
	c.Magazines.DateLanguage = strings.ToLower(strings.TrimSpace(c.Magazines.DateLanguage))
	if c.Magazines.DateLanguage == "" {
		c.Magazines.DateLanguage = defaultDateLanguage
	}
}

func (c *Config) normalizeMatching() {
	if c.Matching.NameRatio == 0 {
		c.Matching.NameRatio = defaultNameRatio
	}
	if c.Matching.NamePartial == 0 {
		c.Matching.NamePartial = defaultNamePartial
	}
	if c.Matching.NamePartName == 0 {
		c.Matching.NamePartName = defaultNamePartName
	}
}

func (c *Config) normalizeAuthors() {
	if strings.TrimSpace(c.Authors.NamePostfixes) == "" {
		c.Authors.NamePostfixes = defaultNamePostfixes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
