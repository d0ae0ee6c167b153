// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/timesynx/internal/board"
	"github.com/javiermolinar/timesynx/internal/share"
)

// SQLite implements board.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ board.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveBoard inserts b, or replaces the payload of the board with the same name.
func (s *SQLite) SaveBoard(ctx context.Context, b *board.Board) error {
	if err := b.Validate(); err != nil {
		return err
	}
	name := strings.TrimSpace(b.Name)

	payload, err := share.EncodeState(b.State)
	if err != nil {
		return fmt.Errorf("encoding board %q: %w", name, err)
	}

	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = time.Now()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = b.UpdatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		id        int64
		createdAt string
	)
	err = tx.QueryRowContext(ctx, `SELECT id, created_at FROM boards WHERE name = ?`, name).Scan(&id, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		result, err := tx.ExecContext(ctx,
			`INSERT INTO boards (name, payload, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			name,
			payload,
			b.CreatedAt.UTC().Format(time.RFC3339),
			b.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting board: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
	case err != nil:
		return fmt.Errorf("querying board: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE boards SET payload = ?, updated_at = ? WHERE id = ?`,
			payload,
			b.UpdatedAt.UTC().Format(time.RFC3339),
			id,
		); err != nil {
			return fmt.Errorf("updating board: %w", err)
		}
		b.CreatedAt, err = parseTimestamp(createdAt)
		if err != nil {
			return fmt.Errorf("parsing created_at: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	b.ID = id
	b.Name = name
	return nil
}

// GetBoard retrieves a board by name.
func (s *SQLite) GetBoard(ctx context.Context, name string) (*board.Board, error) {
	query := `
		SELECT id, name, payload, created_at, updated_at
		FROM boards
		WHERE name = ?
	`

	b, err := scanBoard(s.db.QueryRowContext(ctx, query, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying board: %w", err)
	}
	return b, nil
}

// ListBoards returns all boards ordered by name.
func (s *SQLite) ListBoards(ctx context.Context) ([]*board.Board, error) {
	query := `
		SELECT id, name, payload, created_at, updated_at
		FROM boards
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var boards []*board.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating boards: %w", err)
	}

	return boards, nil
}

// RenameBoard changes a board's name.
func (s *SQLite) RenameBoard(ctx context.Context, oldName, newName string) error {
	renamed := board.Board{Name: newName}
	if err := renamed.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE boards SET name = ?, updated_at = ? WHERE name = ?`,
		strings.TrimSpace(newName),
		time.Now().UTC().Format(time.RFC3339),
		strings.TrimSpace(oldName),
	)
	if err != nil {
		return fmt.Errorf("renaming board: %w", err)
	}
	return expectOneRow(result)
}

// DeleteBoard removes a board by name.
func (s *SQLite) DeleteBoard(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}
	return expectOneRow(result)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return board.ErrNotFound
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBoard(row scanner) (*board.Board, error) {
	var (
		b         board.Board
		payload   string
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&b.ID, &b.Name, &payload, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	// Rows written by other versions may carry payloads this one cannot read;
	// those fall back to the default comparison rather than failing the list.
	b.State = share.Decode(payload)

	var err error
	b.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	b.UpdatedAt, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &b, nil
}

// parseTimestamp accepts RFC3339 and SQLite's CURRENT_TIMESTAMP format.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
