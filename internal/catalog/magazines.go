package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Magazine fetches one magazine by title. Returns (nil, nil) when absent.
func (s *Store) Magazine(ctx context.Context, title string) (*Magazine, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT Title, DateType, IssueDate, LatestCover, DateAdded
         FROM magazines WHERE Title = ?`, title)
	var m Magazine
	err := row.Scan(&m.Title, &m.DateType, &m.IssueDate, &m.LatestCover, &m.DateAdded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("magazine by title: %w", err)
	}
	return &m, nil
}

// Magazines lists every magazine ordered by title.
func (s *Store) Magazines(ctx context.Context) ([]Magazine, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT Title, DateType, IssueDate, LatestCover, DateAdded
         FROM magazines ORDER BY Title COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	defer rows.Close()

	var magazines []Magazine
	for rows.Next() {
		var m Magazine
		if err := rows.Scan(&m.Title, &m.DateType, &m.IssueDate, &m.LatestCover, &m.DateAdded); err != nil {
			return nil, fmt.Errorf("scan magazine: %w", err)
		}
		magazines = append(magazines, m)
	}
	return magazines, rows.Err()
}

// UpsertMagazine updates the magazine keyed by Title or inserts it.
func (s *Store) UpsertMagazine(ctx context.Context, magazine Magazine) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE magazines SET DateType = ?, IssueDate = ?, LatestCover = ? WHERE Title = ?`,
		magazine.DateType, magazine.IssueDate, magazine.LatestCover, magazine.Title)
	if err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO magazines (Title, DateType, IssueDate, LatestCover, DateAdded)
         VALUES (?, ?, ?, ?, ?)`,
		magazine.Title, magazine.DateType, magazine.IssueDate, magazine.LatestCover, timestamp())
	if err != nil {
		return fmt.Errorf("insert magazine: %w", err)
	}
	return nil
}

// UpsertIssue updates the issue keyed by (Title, IssueDate) or inserts it.
func (s *Store) UpsertIssue(ctx context.Context, issue Issue) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE issues SET IssueID = ?, IssueFile = ? WHERE Title = ? AND IssueDate = ?`,
		issue.ID, issue.IssueFile, issue.Title, issue.IssueDate)
	if err != nil {
		return fmt.Errorf("update issue: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO issues (IssueID, Title, IssueDate, IssueFile, DateAdded)
         VALUES (?, ?, ?, ?, ?)`,
		issue.ID, issue.Title, issue.IssueDate, issue.IssueFile, timestamp())
	if err != nil {
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}

// MagazineIssues lists a magazine's issues, newest dbdate first.
func (s *Store) MagazineIssues(ctx context.Context, title string) ([]Issue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT IssueID, Title, IssueDate, IssueFile, DateAdded
         FROM issues WHERE Title = ? ORDER BY IssueDate DESC`, title)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var issue Issue
		if err := rows.Scan(&issue.ID, &issue.Title, &issue.IssueDate, &issue.IssueFile, &issue.DateAdded); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
