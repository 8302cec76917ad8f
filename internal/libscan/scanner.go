package libscan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"librarian/internal/bookmatch"
	"librarian/internal/catalog"
	"librarian/internal/config"
	"librarian/internal/logging"
)

// ErrScanInProgress is returned when another scan holds the scan lock.
var ErrScanInProgress = errors.New("another scan is already running")

// Matcher resolves an (author, title) pair against the catalog.
// *bookmatch.Finder satisfies it.
type Matcher interface {
	FindBook(ctx context.Context, author, book string, opts bookmatch.Options) (*bookmatch.Match, error)
}

// Statuser updates a book's per-library status. *catalog.Store satisfies
// it.
type Statuser interface {
	SetBookStatus(ctx context.Context, bookID string, library catalog.Library, status catalog.Status) error
}

// Summary reports what one scan run did.
type Summary struct {
	Files        int
	Matched      int
	Updated      int
	Unrecognized int
}

// Scanner walks a library tree and files its books into the catalog.
type Scanner struct {
	finder Matcher
	store  Statuser
	log    *slog.Logger

	libraryDir string
	logDir     string
	lock       *flock.Flock
	types      map[string]struct{}
}

// New builds a Scanner. The scan lock lives in the configured log
// directory so concurrent invocations, including magazine scans, take
// turns.
func New(store Statuser, finder Matcher, cfg *config.Config, log *slog.Logger) *Scanner {
	if log == nil {
		log = logging.NewNop()
	}
	types := make(map[string]struct{})
	for _, ext := range cfg.BookTypes() {
		types[ext] = struct{}{}
	}
	return &Scanner{
		finder:     finder,
		store:      store,
		log:        logging.WithComponent(log, "libscan"),
		libraryDir: cfg.Paths.LibraryDir,
		logDir:     cfg.Paths.LogDir,
		lock:       flock.New(filepath.Join(cfg.Paths.LogDir, "scan.lock")),
		types:      types,
	}
}

// Scan walks dir, or the configured library directory when dir is empty,
// and reconciles every book file against the catalog. Books that resolve
// and are not already Open are marked Open for the given library.
func (s *Scanner) Scan(ctx context.Context, dir string, library catalog.Library) (*Summary, error) {
	if dir == "" {
		dir = s.libraryDir
	}
	if library == "" {
		library = catalog.LibraryEBook
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("scan directory %q unavailable: %w", dir, err)
	}

	if err := os.MkdirAll(s.logDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare lock directory: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !ok {
		return nil, ErrScanInProgress
	}
	defer func() { _ = s.lock.Unlock() }()

	log := s.log.With("run", uuid.NewString(), "library", string(library))
	log.Info("scanning library directory", "dir", dir)

	summary := &Summary{}
	// Multiple formats of one book share a directory; count it once.
	seen := make(map[string]struct{})

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable path", "path", path, logging.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if _, ok := s.types[ext]; !ok {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		summary.Files++

		author, title, ok := inferBook(rel)
		if !ok {
			log.Warn("cannot infer author and title", "file", rel)
			summary.Unrecognized++
			return nil
		}
		key := strings.ToLower(author + "/" + title)
		if _, dup := seen[key]; dup {
			return nil
		}
		seen[key] = struct{}{}

		match, err := s.finder.FindBook(ctx, author, title, bookmatch.Options{Library: library})
		if err != nil {
			return fmt.Errorf("match %q by %q: %w", title, author, err)
		}
		if match == nil {
			log.Warn("no catalog match", "author", author, "title", title, "file", rel)
			summary.Unrecognized++
			return nil
		}
		summary.Matched++
		if match.Status != catalog.StatusOpen {
			if err := s.store.SetBookStatus(ctx, match.Book.ID, library, catalog.StatusOpen); err != nil {
				return fmt.Errorf("mark %q open: %w", match.Book.Name, err)
			}
			summary.Updated++
			log.Info("filed book", "author", author, "title", match.Book.Name, "method", string(match.Method))
		} else {
			log.Debug("book already filed", "author", author, "title", match.Book.Name)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	log.Info("library scan complete",
		"files", summary.Files, "matched", summary.Matched,
		"updated", summary.Updated, "unrecognized", summary.Unrecognized)
	return summary, nil
}

// inferBook derives an author and title from a book file's path relative
// to the scan root. Accepted layouts are Author/Title/book.epub,
// Author/Title.epub (optionally "Author - Title.epub"), and a bare
// "Author - Title.epub" at the root.
func inferBook(rel string) (author, title string, ok bool) {
	rel = filepath.ToSlash(rel)
	parts := strings.Split(rel, "/")
	base := parts[len(parts)-1]
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	switch {
	case len(parts) >= 3:
		author, title = parts[0], parts[1]
	case len(parts) == 2:
		author = parts[0]
		title = stem
		if before, after, found := strings.Cut(stem, " - "); found && strings.EqualFold(before, author) {
			title = after
		}
	default:
		var found bool
		author, title, found = strings.Cut(stem, " - ")
		if !found {
			return "", "", false
		}
	}

	author = strings.TrimSpace(author)
	title = strings.TrimSpace(title)
	if author == "" || title == "" {
		return "", "", false
	}
	return author, title, true
}
