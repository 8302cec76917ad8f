package bookmatch_test

import (
	"context"
	"errors"
	"testing"

	"librarian/internal/bookmatch"
	"librarian/internal/catalog"
	"librarian/internal/logging"
	"librarian/internal/testsupport"
)

func TestFindBookExactMatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "Ann Leckie")
	book := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "Ancillary Justice",
		Status:   catalog.StatusHave,
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "Ann Leckie", "Ancillary Justice!", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected an exact match, got none")
	}
	if match.Method != bookmatch.MethodExact {
		t.Errorf("method = %q, want %q", match.Method, bookmatch.MethodExact)
	}
	if match.Book.ID != book.ID {
		t.Errorf("matched book %q, want %q", match.Book.ID, book.ID)
	}
	if match.Status != catalog.StatusHave {
		t.Errorf("status = %q, want %q", match.Status, catalog.StatusHave)
	}
}

func TestFindBookTokenReorder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "J.R.R. Tolkien")
	book := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Lord of the Rings",
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "J.R.R. Tolkien", "Lord of the Rings, The", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a fuzzy match, got none")
	}
	if match.Method != bookmatch.MethodRatio {
		t.Errorf("method = %q, want %q", match.Method, bookmatch.MethodRatio)
	}
	if match.Book.ID != book.ID {
		t.Errorf("matched book %q, want %q", match.Book.ID, book.ID)
	}
}

func TestFindBookMissingLeadingArticle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "J.R.R. Tolkien")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Lord of the Rings",
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "J.R.R. Tolkien", "Lord of the Rings", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a fuzzy match, got none")
	}
	if match.Method != bookmatch.MethodPartial {
		t.Errorf("method = %q, want %q", match.Method, bookmatch.MethodPartial)
	}
}

func TestFindBookSubtitledCopyMatchesShortTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "J.R.R. Tolkien")
	book := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Lord of the Rings",
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	title := "The Lord of the Rings: An Extended Annotated Readers Companion Edition"
	match, err := finder.FindBook(context.Background(), "J.R.R. Tolkien", title, bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a part-name match, got none")
	}
	if match.Method != bookmatch.MethodPartName {
		t.Errorf("method = %q, want %q", match.Method, bookmatch.MethodPartName)
	}
	if match.Book.ID != book.ID {
		t.Errorf("matched book %q, want %q", match.Book.ID, book.ID)
	}
}

func TestFindBookPrefixMatch(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithThresholds(101, 101, 101))
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "Stephen King")
	book := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Stand",
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "Stephen King", "The Stand: Unabridged Notes", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a prefix match, got none")
	}
	if match.Method != bookmatch.MethodPrefix {
		t.Errorf("method = %q, want %q", match.Method, bookmatch.MethodPrefix)
	}
	if match.Book.ID != book.ID {
		t.Errorf("matched book %q, want %q", match.Book.ID, book.ID)
	}
}

func TestFindBookStricterThresholdsOnlyRemoveMatches(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "J.R.R. Tolkien")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Lord of the Rings",
	})

	relaxed := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := relaxed.FindBook(context.Background(), "J.R.R. Tolkien", "Lord of the Rings, The", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match at the default thresholds")
	}

	strictCfg := testsupport.NewConfig(t, testsupport.WithThresholds(101, 101, 101))
	strict := bookmatch.NewFinder(store, nil, strictCfg, logging.NewNop())
	match, err = strict.FindBook(context.Background(), "J.R.R. Tolkien", "Lord of the Rings, The", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match != nil {
		t.Errorf("raised thresholds produced a match %q, want none", match.Book.Name)
	}
}

func TestFindBookDigitDifferenceRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "B. V. Larson")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "Star Force 3",
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "B. V. Larson", "Star Force 2", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match != nil {
		t.Errorf("matched %q against %q, want no match", match.Book.Name, "Star Force 2")
	}
}

func TestFindBookOmnibusRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "Ursula K. Le Guin")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Complete Annotated Earthsea Omnibus Collected Edition",
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "Ursula K. Le Guin", "Earthsea", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match != nil {
		t.Errorf("matched omnibus %q against single title, want no match", match.Book.Name)
	}
}

func TestFindBookTieBreakPrefersHave(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "L. Frank Baum")
	testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Wizard of Oz",
		Status:   catalog.StatusSkipped,
	})
	have := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Wizard of Oz",
		Status:   catalog.StatusHave,
	})

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "L. Frank Baum", "Wizard of Oz, The", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match, got none")
	}
	if match.Book.ID != have.ID {
		t.Errorf("matched book %q with status %q, want the Have copy %q", match.Book.ID, match.Status, have.ID)
	}
}

func TestFindBookUnknownAuthorWithoutRegistrar(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	finder := bookmatch.NewFinder(store, nil, cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "Nobody Known", "Some Book", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match != nil {
		t.Errorf("matched %q for unknown author, want no match", match.Book.Name)
	}
}

func TestFindBookRemovesAuthorAddedForFailedMatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	finder := bookmatch.NewFinder(store, bookmatch.NewRegistrar(store, cfg, logging.NewNop()), cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "Brandon Sanderson", "The Way of Kings", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match != nil {
		t.Fatalf("matched %q in an empty catalog", match.Book.Name)
	}

	authors, err := store.Authors(context.Background())
	if err != nil {
		t.Fatalf("Authors: %v", err)
	}
	if len(authors) != 0 {
		t.Errorf("author row left behind after failed match: %v", authors)
	}
}

// erroringCatalog registers no authors and fails every book query,
// recording which authors get deleted.
type erroringCatalog struct {
	err     error
	deleted []string
}

func (c *erroringCatalog) AuthorByName(ctx context.Context, name string) (*catalog.Author, error) {
	return nil, nil
}

func (c *erroringCatalog) DeleteAuthor(ctx context.Context, id string) error {
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *erroringCatalog) ExactBookMatches(ctx context.Context, authorID, title, source string, library catalog.Library) ([]catalog.Book, error) {
	return nil, c.err
}

func (c *erroringCatalog) AuthorBooks(ctx context.Context, authorID string, ignored *bool, source string, library catalog.Library) ([]catalog.Book, error) {
	return nil, c.err
}

type fixedRegistrar struct {
	author *catalog.Author
}

func (r fixedRegistrar) Register(ctx context.Context, name, title string) (*catalog.Author, bool, error) {
	return r.author, true, nil
}

func TestFindBookRemovesAuthorAddedBeforeCatalogError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cat := &erroringCatalog{err: errors.New("catalog offline")}
	registrar := fixedRegistrar{author: &catalog.Author{ID: "au1", Name: "Brandon Sanderson"}}

	finder := bookmatch.NewFinder(cat, registrar, cfg, logging.NewNop())
	_, err := finder.FindBook(context.Background(), "Brandon Sanderson", "The Way of Kings", bookmatch.Options{})
	if err == nil {
		t.Fatal("expected the catalog error to propagate")
	}
	if len(cat.deleted) != 1 || cat.deleted[0] != "au1" {
		t.Errorf("deleted authors = %v, want the auto-registered row removed", cat.deleted)
	}
}

func TestFindBookNormalisesAuthorName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	author := testsupport.MustAddAuthor(t, store, "J.R.R. Tolkien")
	book := testsupport.MustUpsertBook(t, store, catalog.Book{
		AuthorID: author.ID,
		Name:     "The Hobbit",
	})

	finder := bookmatch.NewFinder(store, bookmatch.NewRegistrar(store, cfg, logging.NewNop()), cfg, logging.NewNop())
	match, err := finder.FindBook(context.Background(), "Tolkien, J.R.R.", "The Hobbit", bookmatch.Options{})
	if err != nil {
		t.Fatalf("FindBook: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match under the normalised author name")
	}
	if match.Book.ID != book.ID {
		t.Errorf("matched book %q, want %q", match.Book.ID, book.ID)
	}

	authors, err := store.Authors(context.Background())
	if err != nil {
		t.Fatalf("Authors: %v", err)
	}
	if len(authors) != 1 {
		t.Errorf("expected a single author row, got %d", len(authors))
	}
}
