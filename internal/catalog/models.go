package catalog

// Status tracks whether the library holds, wants, or ignores a book.
type Status string

const (
	// StatusHave means a copy exists in the library.
	StatusHave Status = "Have"
	// StatusOpen means the book was seen but not filed into the library.
	StatusOpen Status = "Open"
	// StatusWanted marks a book queued for acquisition.
	StatusWanted Status = "Wanted"
	// StatusSkipped is the neutral default for catalog entries.
	StatusSkipped Status = "Skipped"
	// StatusIgnored marks a book the user never wants matched or fetched.
	StatusIgnored Status = "Ignored"
)

// Library selects which per-format status column an operation reads or
// writes.
type Library string

const (
	LibraryEBook     Library = "eBook"
	LibraryAudioBook Library = "AudioBook"
)

// StatusColumn is the books column holding this library's status.
func (l Library) StatusColumn() string {
	if l == LibraryAudioBook {
		return "AudioStatus"
	}
	return "Status"
}

// LibraryStatus returns the status relevant to the given library.
func (b Book) LibraryStatus(library Library) Status {
	if library == LibraryAudioBook {
		return b.AudioStatus
	}
	return b.Status
}

// Author is one row of the authors table.
type Author struct {
	ID        string
	Name      string
	Status    string
	DateAdded string
}

// Book is one row of the books table. The source ID columns hold this
// book's identifier at each metadata source; empty means unknown there.
type Book struct {
	ID            string
	AuthorID      string
	Name          string
	Sub           string
	ISBN          string
	Status        Status
	AudioStatus   Status
	GoodreadsID   string
	OpenLibraryID string
	GoogleID      string
	HardcoverID   string
	DateAdded     string
}

// Magazine is one row of the magazines table. IssueDate holds the dbdate of
// the most recent issue seen.
type Magazine struct {
	Title       string
	DateType    string
	IssueDate   string
	LatestCover string
	DateAdded   string
}

// Issue is one row of the issues table, keyed naturally by (Title,
// IssueDate).
type Issue struct {
	ID        string
	Title     string
	IssueDate string
	IssueFile string
	DateAdded string
}

// sourceColumns maps metadata source names to their books column.
var sourceColumns = map[string]string{
	"goodreads":   "GoodreadsID",
	"openlibrary": "OpenLibraryID",
	"google":      "GoogleID",
	"hardcover":   "HardcoverID",
}

// SourceColumn resolves a metadata source name to the books column holding
// that source's book IDs. Unknown sources return ok=false and the caller
// skips the source guard.
func SourceColumn(source string) (string, bool) {
	column, ok := sourceColumns[source]
	return column, ok
}
