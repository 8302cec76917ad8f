package magscan

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"librarian/internal/catalog"
	"librarian/internal/config"
	"librarian/internal/fileutil"
	"librarian/internal/issuedate"
	"librarian/internal/libscan"
	"librarian/internal/logging"
	"librarian/internal/namenorm"
	"librarian/internal/organizer"
)

// Store is the catalog surface the scanner writes through.
// *catalog.Store satisfies it.
type Store interface {
	Magazine(ctx context.Context, title string) (*catalog.Magazine, error)
	UpsertMagazine(ctx context.Context, magazine catalog.Magazine) error
	UpsertIssue(ctx context.Context, issue catalog.Issue) error
}

// Summary reports what one magazine scan run did.
type Summary struct {
	Files        int
	Issues       int
	Magazines    int
	Unrecognized int
}

// Scanner walks the magazine tree and files issues into the catalog.
type Scanner struct {
	store Store
	log   *slog.Logger

	magazineDir string
	logDir      string
	lock        *flock.Flock
	types       map[string]struct{}
	pattern     *regexp.Regexp
	parseOpts   issuedate.Options

	rename     bool
	destFile   string
	destFolder string
	orgOpts    organizer.Options
}

// New builds a Scanner. The filename pattern is derived from the
// configured magazine destination file template, so renamed libraries are
// recognised by the same template that named them. The scan lock is
// shared with the library scanner.
func New(store Store, cfg *config.Config, log *slog.Logger) (*Scanner, error) {
	if log == nil {
		log = logging.NewNop()
	}
	exts := cfg.MagTypes()
	types := make(map[string]struct{})
	for _, ext := range exts {
		types[ext] = struct{}{}
	}
	pattern, err := filePattern(cfg.Magazines.DestFile, exts)
	if err != nil {
		return nil, fmt.Errorf("magazine file pattern: %w", err)
	}
	return &Scanner{
		store:       store,
		log:         logging.WithComponent(log, "magscan"),
		magazineDir: cfg.Paths.MagazineDir,
		logDir:      cfg.Paths.LogDir,
		lock:        flock.New(filepath.Join(cfg.Paths.LogDir, "scan.lock")),
		types:       types,
		pattern:     pattern,
		parseOpts: issuedate.Options{
			Months:      issuedate.DefaultMonthTable(),
			IssueNouns:  cfg.IssueNouns(),
			VolumeNouns: cfg.VolumeNouns(),
		},
		rename:     cfg.Magazines.Rename,
		destFile:   cfg.Magazines.DestFile,
		destFolder: cfg.Magazines.DestFolder,
		orgOpts: organizer.Options{
			Months:   issuedate.DefaultMonthTable(),
			Language: cfg.Magazines.DateLanguage,
		},
	}, nil
}

// filePattern turns a destination file template such as
// "$IssueDate - $Title" into a case-insensitive regexp over filenames
// with the given extensions.
func filePattern(template string, exts []string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(template)
	quoted = strings.ReplaceAll(quoted, regexp.QuoteMeta("$IssueDate"), `(?P<issuedate>.*?)`)
	quoted = strings.ReplaceAll(quoted, regexp.QuoteMeta("$Title"), `(?P<title>.*?)`)
	if len(exts) == 0 {
		exts = []string{"pdf"}
	}
	return regexp.Compile(`(?i)^` + quoted + `\.(?:` + strings.Join(exts, "|") + `)$`)
}

// Scan walks dir, or the configured magazine directory when dir is
// empty, and upserts every issue whose filename yields a date. The
// magazine row's IssueDate and LatestCover track the newest issue seen.
func (s *Scanner) Scan(ctx context.Context, dir string) (*Summary, error) {
	if dir == "" {
		dir = s.magazineDir
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("magazine directory %q unavailable: %w", dir, err)
	}

	if err := os.MkdirAll(s.logDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare lock directory: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !ok {
		return nil, libscan.ErrScanInProgress
	}
	defer func() { _ = s.lock.Unlock() }()

	log := s.log.With("run", uuid.NewString())
	log.Info("scanning magazine directory", "dir", dir)

	summary := &Summary{}
	titles := make(map[string]struct{})

	// Collect first so files moved into canonical folders by this run are
	// not walked a second time.
	var files []string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable path", "path", path, logging.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if _, ok := s.types[ext]; ok {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary.Files++

		fname := filepath.Base(path)
		parent := ""
		if p := filepath.Dir(path); p != filepath.Clean(dir) {
			parent = filepath.Base(p)
		}
		title, issueText := s.classify(fname, parent)
		if title == "" {
			log.Warn("cannot determine magazine title", "file", fname)
			summary.Unrecognized++
			continue
		}

		mag, err := s.store.Magazine(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("look up magazine %q: %w", title, err)
		}
		datetype := ""
		if mag != nil {
			datetype = mag.DateType
		}

		parts := issuedate.DateParts{}
		if issueText != "" {
			parts = issuedate.Parse(s.parseOpts, issueText, datetype)
		}
		if parts.Style == issuedate.StyleNone {
			parts = issuedate.Parse(s.parseOpts, fname, datetype)
		}
		if parts.Style == issuedate.StyleNone {
			log.Warn("no issue date in filename", "title", title, "file", fname)
			summary.Unrecognized++
			continue
		}
		dbdate := parts.DBDate
		log.Debug("found issue", "title", title, "dbdate", dbdate, "style", parts.Style.String())

		if s.rename {
			path = s.organize(log, dir, path, title, parts)
		}

		if mag == nil {
			mag = &catalog.Magazine{Title: title, IssueDate: dbdate, LatestCover: path}
			if err := s.store.UpsertMagazine(ctx, *mag); err != nil {
				return nil, fmt.Errorf("add magazine %q: %w", title, err)
			}
			log.Info("added magazine", "title", title)
		} else if mag.IssueDate == "" || dbdate >= mag.IssueDate {
			mag.IssueDate = dbdate
			mag.LatestCover = path
			if err := s.store.UpsertMagazine(ctx, *mag); err != nil {
				return nil, fmt.Errorf("update magazine %q: %w", title, err)
			}
		}
		titles[strings.ToLower(title)] = struct{}{}

		issue := catalog.Issue{
			ID:        issueID(title, dbdate),
			Title:     title,
			IssueDate: dbdate,
			IssueFile: path,
		}
		if err := s.store.UpsertIssue(ctx, issue); err != nil {
			return nil, fmt.Errorf("record issue %s %s: %w", title, dbdate, err)
		}
		summary.Issues++
	}

	summary.Magazines = len(titles)
	log.Info("magazine scan complete",
		"files", summary.Files, "magazines", summary.Magazines,
		"issues", summary.Issues, "unrecognized", summary.Unrecognized)
	return summary, nil
}

// organize moves an issue file to its canonical path under root, built
// from the destination templates. The original path is kept when the
// file is already in place or the move fails.
func (s *Scanner) organize(log *slog.Logger, root, path, title string, parts issuedate.DateParts) string {
	name := organizer.FormatIssueFile(s.orgOpts, s.destFile, title, parts) + strings.ToLower(filepath.Ext(path))
	folder := organizer.FormatIssueFolder(s.orgOpts, s.destFolder, title, parts)
	dest := filepath.Join(root, folder, name)
	if dest == path {
		return path
	}
	if err := fileutil.MoveFile(path, dest); err != nil {
		log.Warn("cannot file issue", "from", path, "to", dest, logging.Error(err))
		return path
	}
	log.Info("filed issue", "from", path, "to", dest)
	return dest
}

// classify extracts the magazine title and any issue date text from a
// filename, falling back to the parent folder name for the title, or to
// the filename's leading words when the file sits at the scan root. A
// title that is all digits is taken to be date text in the wrong slot,
// and the parent folder's spelling of a title wins on a case-insensitive
// match.
func (s *Scanner) classify(fname, parent string) (title, issueText string) {
	parent = strings.TrimSpace(parent)
	if m := s.pattern.FindStringSubmatch(fname); m != nil {
		if idx := s.pattern.SubexpIndex("title"); idx >= 0 {
			title = strings.TrimSpace(m[idx])
		}
		if idx := s.pattern.SubexpIndex("issuedate"); idx >= 0 {
			issueText = strings.TrimSpace(m[idx])
		}
		if title != "" && !allDigits(title) {
			if strings.EqualFold(parent, title) {
				title = parent
			}
			return title, issueText
		}
	}
	if parent != "" {
		return parent, ""
	}
	return fallbackTitle(fname), ""
}

var titleCaser = cases.Title(language.Und)

// fallbackTitle reads the title out of a filename with no folder to name
// the magazine, keeping the words before the first numeric token.
func fallbackTitle(fname string) string {
	stem := strings.TrimSuffix(fname, filepath.Ext(fname))
	words := namenorm.TitleWords(namenorm.Words(stem))
	return titleCaser.String(strings.Join(words, " "))
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// issueID derives the stable issue identifier from the title and dbdate.
func issueID(title, dbdate string) string {
	sum := sha1.Sum([]byte(title + " " + dbdate))
	return hex.EncodeToString(sum[:])
}
