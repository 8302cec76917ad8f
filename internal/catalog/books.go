package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const bookColumns = `BookID, AuthorID, BookName, BookSub, BookISBN, Status, AudioStatus,
    GoodreadsID, OpenLibraryID, GoogleID, HardcoverID, DateAdded`

// ExactBookMatches returns the author's books whose name equals title under
// the NOPUNCTUATION collation, best status first (Have, then Open, then the
// rest, Ignored last). A recognized source name restricts results to books
// known at that source.
func (s *Store) ExactBookMatches(ctx context.Context, authorID, title, source string, library Library) ([]Book, error) {
	query := `SELECT ` + bookColumns + `
        FROM books WHERE AuthorID = ? AND BookName = ? COLLATE NOPUNCTUATION`
	args := []any{authorID, title}
	if column, ok := SourceColumn(source); ok {
		query += ` AND ` + column + ` != ''`
	}
	query += ` ORDER BY CASE ` + library.StatusColumn() + `
        WHEN 'Have' THEN 0 WHEN 'Open' THEN 1 WHEN 'Ignored' THEN 3 ELSE 2 END`

	return s.queryBooks(ctx, query, args...)
}

// AuthorBooks returns the author's books. The ignored filter is tri-state:
// nil returns everything, true only Ignored books, false only the rest. A
// recognized source name restricts results to books known at that source.
func (s *Store) AuthorBooks(ctx context.Context, authorID string, ignored *bool, source string, library Library) ([]Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE AuthorID = ?`
	args := []any{authorID}
	if ignored != nil {
		op := "!="
		if *ignored {
			op = "="
		}
		query += ` AND ` + library.StatusColumn() + ` ` + op + ` ?`
		args = append(args, string(StatusIgnored))
	}
	if column, ok := SourceColumn(source); ok {
		query += ` AND ` + column + ` != ''`
	}

	return s.queryBooks(ctx, query, args...)
}

// UpsertBook updates the book with the same ID or inserts a new row. A
// blank ID gets a generated one; the stored book is returned.
func (s *Store) UpsertBook(ctx context.Context, book Book) (*Book, error) {
	if book.Status == "" {
		book.Status = StatusSkipped
	}
	if book.AudioStatus == "" {
		book.AudioStatus = StatusSkipped
	}
	if book.ID != "" {
		res, err := s.db.ExecContext(ctx,
			`UPDATE books SET AuthorID = ?, BookName = ?, BookSub = ?, BookISBN = ?,
                Status = ?, AudioStatus = ?, GoodreadsID = ?, OpenLibraryID = ?,
                GoogleID = ?, HardcoverID = ?
             WHERE BookID = ?`,
			book.AuthorID, book.Name, book.Sub, book.ISBN,
			book.Status, book.AudioStatus, book.GoodreadsID, book.OpenLibraryID,
			book.GoogleID, book.HardcoverID, book.ID)
		if err != nil {
			return nil, fmt.Errorf("update book: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected > 0 {
			return &book, nil
		}
	} else {
		book.ID = uuid.NewString()
	}

	book.DateAdded = timestamp()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (`+bookColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		book.ID, book.AuthorID, book.Name, book.Sub, book.ISBN,
		book.Status, book.AudioStatus, book.GoodreadsID, book.OpenLibraryID,
		book.GoogleID, book.HardcoverID, book.DateAdded)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}
	return &book, nil
}

// SetBookStatus updates the status column selected by library.
func (s *Store) SetBookStatus(ctx context.Context, bookID string, library Library, status Status) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE books SET `+library.StatusColumn()+` = ? WHERE BookID = ?`,
		string(status), bookID)
	if err != nil {
		return fmt.Errorf("set book status: %w", err)
	}
	return nil
}

func (s *Store) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.AuthorID, &b.Name, &b.Sub, &b.ISBN,
			&b.Status, &b.AudioStatus, &b.GoodreadsID, &b.OpenLibraryID,
			&b.GoogleID, &b.HardcoverID, &b.DateAdded); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
