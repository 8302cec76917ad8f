package testsupport

import (
	"context"
	"testing"

	"librarian/internal/catalog"
	"librarian/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustAddAuthor inserts an author for tests using the provided store.
func MustAddAuthor(t testing.TB, store *catalog.Store, name string) *catalog.Author {
	t.Helper()

	author, err := store.AddAuthor(context.Background(), name)
	if err != nil {
		t.Fatalf("store.AddAuthor: %v", err)
	}
	return author
}

// MustUpsertBook inserts or updates a book for tests.
func MustUpsertBook(t testing.TB, store *catalog.Store, book catalog.Book) *catalog.Book {
	t.Helper()

	stored, err := store.UpsertBook(context.Background(), book)
	if err != nil {
		t.Fatalf("store.UpsertBook: %v", err)
	}
	return stored
}
