package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateMagazines(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return fmt.Errorf("paths.library_dir must be set")
	}
	if strings.TrimSpace(c.Paths.MagazineDir) == "" {
		return fmt.Errorf("paths.magazine_dir must be set")
	}
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		return fmt.Errorf("paths.database_path must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	for name, value := range map[string]int{
		"matching.name_ratio":    c.Matching.NameRatio,
		"matching.name_partial":  c.Matching.NamePartial,
		"matching.name_partname": c.Matching.NamePartName,
	} {
		if value < 0 || value > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", name, value)
		}
	}
	return nil
}

func (c *Config) validateMagazines() error {
	if len(c.IssueNouns()) == 0 {
		return fmt.Errorf("magazines.issue_nouns must list at least one noun")
	}
	if len(c.VolumeNouns()) == 0 {
		return fmt.Errorf("magazines.volume_nouns must list at least one noun")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
