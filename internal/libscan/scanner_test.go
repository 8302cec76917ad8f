package libscan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"librarian/internal/bookmatch"
	"librarian/internal/catalog"
	"librarian/internal/libscan"
	"librarian/internal/logging"
	"librarian/internal/testsupport"
)

func writeBookFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("book"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanMarksMatchedBooksOpen(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "Ann Leckie")
	book := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "Ancillary Justice",
		Status:   catalog.StatusWanted,
	})

	writeBookFile(t, cfg.Paths.LibraryDir, "Ann Leckie", "Ancillary Justice", "Ancillary Justice.epub")

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	scanner := libscan.New(store, finder, cfg, logging.NewNop())
	summary, err := scanner.Scan(context.Background(), "", catalog.LibraryEBook)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if summary.Files != 1 || summary.Matched != 1 || summary.Updated != 1 {
		t.Errorf("summary = %+v, want 1 file matched and updated", summary)
	}

	books, err := store.AuthorBooks(context.Background(), author.ID, nil, "", catalog.LibraryEBook)
	if err != nil {
		t.Fatalf("AuthorBooks: %v", err)
	}
	if len(books) != 1 || books[0].ID != book.ID {
		t.Fatalf("unexpected books: %+v", books)
	}
	if books[0].Status != catalog.StatusOpen {
		t.Errorf("status = %q, want %q", books[0].Status, catalog.StatusOpen)
	}
}

func TestScanCountsDuplicateFormatsOnce(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "Ann Leckie")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "Ancillary Sword",
	})

	writeBookFile(t, cfg.Paths.LibraryDir, "Ann Leckie", "Ancillary Sword", "Ancillary Sword.epub")
	writeBookFile(t, cfg.Paths.LibraryDir, "Ann Leckie", "Ancillary Sword", "Ancillary Sword.mobi")

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	scanner := libscan.New(store, finder, cfg, logging.NewNop())
	summary, err := scanner.Scan(context.Background(), "", catalog.LibraryEBook)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if summary.Files != 2 {
		t.Errorf("files = %d, want 2", summary.Files)
	}
	if summary.Matched != 1 || summary.Updated != 1 {
		t.Errorf("summary = %+v, want one match for both formats", summary)
	}
}

func TestScanSkipsUnrecognizedFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	writeBookFile(t, cfg.Paths.LibraryDir, "stray.epub")
	writeBookFile(t, cfg.Paths.LibraryDir, "notes.txt")

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	scanner := libscan.New(store, finder, cfg, logging.NewNop())
	summary, err := scanner.Scan(context.Background(), "", catalog.LibraryEBook)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if summary.Files != 1 {
		t.Errorf("files = %d, want 1 (txt is not a book type)", summary.Files)
	}
	if summary.Unrecognized != 1 {
		t.Errorf("unrecognized = %d, want 1", summary.Unrecognized)
	}
	if summary.Matched != 0 {
		t.Errorf("matched = %d, want 0", summary.Matched)
	}
}

func TestScanDashFilenameAtRoot(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "Frank Herbert")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "Dune",
	})

	writeBookFile(t, cfg.Paths.LibraryDir, "Frank Herbert - Dune.epub")

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	scanner := libscan.New(store, finder, cfg, logging.NewNop())
	summary, err := scanner.Scan(context.Background(), "", catalog.LibraryEBook)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if summary.Matched != 1 {
		t.Errorf("summary = %+v, want one match from the dashed filename", summary)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	scanner := libscan.New(store, finder, cfg, logging.NewNop())
	if _, err := scanner.Scan(context.Background(), filepath.Join(cfg.Paths.LibraryDir, "absent"), catalog.LibraryEBook); err == nil {
		t.Fatal("expected an error for a missing scan directory")
	}
}

func TestScanLockHeld(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	if err := os.MkdirAll(cfg.Paths.LibraryDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "scan.lock"))
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("take lock: ok=%v err=%v", ok, err)
	}
	defer func() { _ = lock.Unlock() }()

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	scanner := libscan.New(store, finder, cfg, logging.NewNop())
	if _, err := scanner.Scan(context.Background(), "", catalog.LibraryEBook); !errors.Is(err, libscan.ErrScanInProgress) {
		t.Fatalf("err = %v, want ErrScanInProgress", err)
	}
}
