// Package board defines saved comparison boards and their storage interface.
package board

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/timesynx/internal/share"
)

// Validation errors.
var (
	ErrEmptyName   = errors.New("board name cannot be empty")
	ErrNameTooLong = errors.New("board name must be at most 64 characters")
	ErrNotFound    = errors.New("board not found")
)

// MaxNameLength bounds board names.
const MaxNameLength = 64

// Board is a named snapshot of a comparison.
type Board struct {
	ID        int64
	Name      string
	State     share.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a board for the given state.
func New(name string, state share.State, now time.Time) (*Board, error) {
	b := &Board{
		Name:      strings.TrimSpace(name),
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the board name.
func (b *Board) Validate() error {
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Repository defines the storage interface for boards.
type Repository interface {
	// SaveBoard inserts the board or replaces the one with the same name.
	// The board's ID and CreatedAt are set from the stored row.
	SaveBoard(ctx context.Context, b *Board) error

	// GetBoard retrieves a board by name. Returns nil, nil if it does not exist.
	GetBoard(ctx context.Context, name string) (*Board, error)

	// ListBoards returns all boards ordered by name.
	ListBoards(ctx context.Context) ([]*Board, error)

	// RenameBoard changes a board's name.
	// Returns ErrNotFound if no board has the old name.
	RenameBoard(ctx context.Context, oldName, newName string) error

	// DeleteBoard removes a board by name.
	// Returns ErrNotFound if no board has that name.
	DeleteBoard(ctx context.Context, name string) error

	// Close releases any resources held by the repository.
	Close() error
}
