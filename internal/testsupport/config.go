package testsupport

import (
	"path/filepath"
	"testing"

	"librarian/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "books")
	cfg.Paths.MagazineDir = filepath.Join(base, "magazines")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.DatabasePath = filepath.Join(base, "librarian.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithThresholds overrides the fuzzy-match thresholds on the test config.
func WithThresholds(ratio, partial, partname int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.NameRatio = ratio
		cfg.Matching.NamePartial = partial
		cfg.Matching.NamePartName = partname
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DatabasePath)
}
