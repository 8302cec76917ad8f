package bookmatch

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"librarian/internal/catalog"
	"librarian/internal/config"
	"librarian/internal/logging"
	"librarian/internal/namenorm"
	"librarian/internal/textutil"
)

// Method records which comparison produced a match.
type Method string

const (
	MethodExact    Method = "exact"
	MethodRatio    Method = "ratio"
	MethodPartial  Method = "partial"
	MethodPartName Method = "partname"
	MethodPrefix   Method = "prefix"
)

// Match is a resolved catalog book together with how it was found.
type Match struct {
	Book   catalog.Book
	Status catalog.Status
	Method Method
	Score  int
}

// Options narrow a lookup to one library format, one metadata source,
// or one side of the ignored flag. A nil Ignored means both sides.
type Options struct {
	Library catalog.Library
	Source  string
	Ignored *bool
}

// Catalog is the store surface the finder needs. *catalog.Store
// satisfies it.
type Catalog interface {
	AuthorByName(ctx context.Context, name string) (*catalog.Author, error)
	DeleteAuthor(ctx context.Context, id string) error
	ExactBookMatches(ctx context.Context, authorID, title, source string, library catalog.Library) ([]catalog.Book, error)
	AuthorBooks(ctx context.Context, authorID string, ignored *bool, source string, library catalog.Library) ([]catalog.Book, error)
}

// AuthorRegistrar resolves an unknown author name to a catalog author,
// creating one when needed. added reports whether a row was created;
// the finder removes it again if the lookup ends with no match.
type AuthorRegistrar interface {
	Register(ctx context.Context, name, title string) (*catalog.Author, bool, error)
}

// Finder resolves scanned titles against the catalog.
type Finder struct {
	catalog   Catalog
	registrar AuthorRegistrar
	log       *slog.Logger

	ratio    int
	partial  int
	partName int
	noSplit  []string
}

// NewFinder builds a Finder using the matching thresholds and no-split
// list from cfg. registrar may be nil, in which case unknown authors
// never match.
func NewFinder(cat Catalog, registrar AuthorRegistrar, cfg *config.Config, log *slog.Logger) *Finder {
	if log == nil {
		log = logging.NewNop()
	}
	return &Finder{
		catalog:   cat,
		registrar: registrar,
		log:       logging.WithComponent(log, "bookmatch"),
		ratio:     cfg.Matching.NameRatio,
		partial:   cfg.Matching.NamePartial,
		partName:  cfg.Matching.NamePartName,
		noSplit:   cfg.NoSplitTitles(),
	}
}

// A subtitle qualifies for prefix matching when, after the colon is
// dropped, it is a single plain phrase or one parenthesised group.
var cleanSubtitleRE = regexp.MustCompile(`^\s+([^:()]+|\([^)]+\))$`)

// Title spellings that vary between metadata sources. A candidate is
// rewritten toward the scanned title only when the scanned title uses
// the other form.
var titleTranslates = [][2]string{
	{" & ", " and "},
	{" vs. ", " versus "},
}

// FindBook resolves book by author to a catalog entry. It first tries
// an exact title comparison ignoring punctuation, preferring Have then
// Open then unignored entries, then falls back to fuzzy scoring across
// all of the author's books. A nil Match with nil error means no book
// passed the thresholds.
func (f *Finder) FindBook(ctx context.Context, author, book string, opts Options) (*Match, error) {
	book = textutil.CollapseSpaces(strings.ReplaceAll(book, "\n", " "))
	author = textutil.CollapseSpaces(author)
	if opts.Library == "" {
		opts.Library = catalog.LibraryEBook
	}
	f.log.Debug("searching catalog", "book", book, "author", author, "source", opts.Source)

	auth, err := f.catalog.AuthorByName(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("look up author %q: %w", author, err)
	}
	added := false
	if auth == nil && f.registrar != nil {
		auth, added, err = f.registrar.Register(ctx, author, book)
		if err != nil {
			return nil, fmt.Errorf("register author %q: %w", author, err)
		}
	}
	if auth == nil {
		f.log.Warn("author not recognised", "author", author)
		return nil, nil
	}
	if auth.Name != author {
		f.log.Debug("author name normalised", "from", author, "to", auth.Name)
		author = auth.Name
	}

	// Drop an author row we created once it is clear they don't have
	// the book. Runs on catalog errors too, so a failed lookup does
	// not orphan the row.
	matched := false
	defer func() {
		if !added || matched {
			return
		}
		if err := f.catalog.DeleteAuthor(ctx, auth.ID); err != nil {
			f.log.Warn("cannot remove unmatched author", "author", author, logging.Error(err))
		}
	}()

	exact, err := f.catalog.ExactBookMatches(ctx, auth.ID, book, opts.Source, opts.Library)
	if err != nil {
		return nil, fmt.Errorf("exact match %q: %w", book, err)
	}
	if len(exact) > 0 {
		best := exact[0]
		f.log.Debug("exact match", "book", book, "id", best.ID)
		matched = true
		return &Match{Book: best, Status: best.LibraryStatus(opts.Library), Method: MethodExact, Score: 100}, nil
	}

	books, err := f.catalog.AuthorBooks(ctx, auth.ID, opts.Ignored, opts.Source, opts.Library)
	if err != nil {
		return nil, fmt.Errorf("list books by %q: %w", author, err)
	}
	if len(books) == 0 {
		f.log.Warn("no titles to match against", "author", author, "source", opts.Source, "library", opts.Library)
		return nil, nil
	}

	bookLower := textutil.StripQuotes(textutil.Unaccent(strings.ToLower(book)))
	partName, bookSub, _ := SplitTitle(strings.ToLower(author), bookLower, f.noSplit)

	// A strict prefix of the scanned title followed by one clean
	// subtitle phrase may match a catalog book without the subtitle.
	hasCleanSubtitle := false
	if partName != "" && partName != bookLower && strings.HasPrefix(bookLower, partName) {
		rest := strings.TrimPrefix(strings.TrimPrefix(bookLower, partName), ":")
		hasCleanSubtitle = cleanSubtitleRE.MatchString(rest)
	}
	if partName == bookLower {
		partName = ""
	}
	f.log.Debug("fuzzy matching", "count", len(books), "author", author, "book", book, "partname", partName)

	wantWords := namenorm.Words(bookLower)
	var bestRatio, bestPartial, bestPartName, prefix candidate

	for _, b := range books {
		name := b.Name
		if b.Sub != "" && bookSub != "" {
			name += " " + b.Sub
		}
		cand := textutil.StripQuotes(textutil.Unaccent(strings.ToLower(name)))
		for _, tr := range titleTranslates {
			if strings.Contains(cand, tr[0]) && !strings.Contains(bookLower, tr[0]) && strings.Contains(bookLower, tr[1]) {
				cand = strings.ReplaceAll(cand, tr[0], tr[1])
			}
			if strings.Contains(cand, tr[1]) && !strings.Contains(bookLower, tr[1]) && strings.Contains(bookLower, tr[0]) {
				cand = strings.ReplaceAll(cand, tr[1], tr[0])
			}
		}

		ratio := textutil.TokenSortRatio(bookLower, cand)
		partial := textutil.PartialRatio(bookLower, cand)
		part := 0
		if partName != "" {
			part = textutil.PartialRatio(partName, cand)
		}

		if textutil.DigitOnlyDifference(bookLower, cand) {
			// "book 2" must not match "book 3" however close the
			// ratios come out.
			ratio = f.ratio - 1
			partial = f.partial - 1
			part = f.partName - 1
		} else {
			// Penalise extra words so the closest edition wins and a
			// single book does not match an omnibus. Part name keeps
			// its score so subtitled copies still reach shorter
			// catalog titles.
			diff := len(wantWords) - len(namenorm.Words(cand))
			if diff < 0 {
				diff = -diff
			}
			ratio -= diff
			partial -= diff
		}

		status := b.LibraryStatus(opts.Library)
		next := candidate{book: b, status: status, rawName: name}

		next.score = ratio
		if f.better(next, bestRatio, wantWords) {
			bestRatio = next
		}
		next.score = partial
		if f.better(next, bestPartial, wantWords) {
			bestPartial = next
		}
		next.score = part
		if f.better(next, bestPartName, wantWords) {
			bestPartName = next
		}
		if hasCleanSubtitle && cand == partName {
			next.score = 100
			prefix = next
		}
	}

	var won candidate
	var method Method
	switch {
	case bestRatio.score >= f.ratio:
		won, method = bestRatio, MethodRatio
	case bestPartial.score >= f.partial:
		won, method = bestPartial, MethodPartial
	case bestPartName.score >= f.partName:
		won, method = bestPartName, MethodPartName
	case prefix.book.ID != "":
		won, method = prefix, MethodPrefix
	default:
		f.log.Debug("best fuzz results below thresholds",
			"book", book, "ratio", bestRatio.score, "partial", bestPartial.score, "partname", bestPartName.score)
		return nil, nil
	}
	f.log.Debug("fuzzy match", "method", method, "score", won.score, "book", book, "matched", won.book.Name)
	matched = true
	return won.match(method), nil
}

type candidate struct {
	score   int
	book    catalog.Book
	status  catalog.Status
	rawName string
}

func (c candidate) match(method Method) *Match {
	return &Match{Book: c.book, Status: c.status, Method: method, Score: c.score}
}

// better reports whether next should replace best. Ties go to Have
// status, then to the candidate sharing more normalizer words with the
// scanned title (merged initials count as one word), then to any
// unignored candidate over an ignored one.
func (f *Finder) better(next, best candidate, wantWords []string) bool {
	if next.score > best.score {
		return true
	}
	if next.score < best.score {
		return false
	}
	if next.status == catalog.StatusHave {
		return true
	}
	bestWords := namenorm.Words(best.rawName)
	newWords := namenorm.Words(next.rawName)
	if countShared(wantWords, newWords) > countShared(wantWords, bestWords) {
		return true
	}
	return best.status == catalog.StatusIgnored && next.status != catalog.StatusIgnored
}

func countShared(want, have []string) int {
	n := 0
	for _, w := range want {
		for _, h := range have {
			if w == h {
				n++
				break
			}
		}
	}
	return n
}
