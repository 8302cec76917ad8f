package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// AuthorByName finds an author by exact case-insensitive name. Returns
// (nil, nil) when no author matches.
func (s *Store) AuthorByName(ctx context.Context, name string) (*Author, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT AuthorID, AuthorName, Status, DateAdded
         FROM authors WHERE AuthorName = ? COLLATE NOCASE`, name)
	author, err := scanAuthor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("author by name: %w", err)
	}
	return author, nil
}

// AuthorByID fetches one author. Returns (nil, nil) when absent.
func (s *Store) AuthorByID(ctx context.Context, id string) (*Author, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT AuthorID, AuthorName, Status, DateAdded FROM authors WHERE AuthorID = ?`, id)
	author, err := scanAuthor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("author by id: %w", err)
	}
	return author, nil
}

// AddAuthor inserts a new author and returns the stored record.
func (s *Store) AddAuthor(ctx context.Context, name string) (*Author, error) {
	author := &Author{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    "Active",
		DateAdded: timestamp(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO authors (AuthorID, AuthorName, Status, DateAdded) VALUES (?, ?, ?, ?)`,
		author.ID, author.Name, author.Status, author.DateAdded)
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}
	return author, nil
}

// DeleteAuthor removes an author; their books go with them.
func (s *Store) DeleteAuthor(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE AuthorID = ?`, id); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// Authors lists every author ordered by name.
func (s *Store) Authors(ctx context.Context) ([]Author, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT AuthorID, AuthorName, Status, DateAdded FROM authors ORDER BY AuthorName COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Status, &a.DateAdded); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*Author, error) {
	var a Author
	if err := row.Scan(&a.ID, &a.Name, &a.Status, &a.DateAdded); err != nil {
		return nil, err
	}
	return &a, nil
}
