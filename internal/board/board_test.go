package board

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/timesynx/internal/share"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "team", "team", nil},
		{"trimmed", "  standup  ", "standup", nil},
		{"empty", "", "", ErrEmptyName},
		{"blank", "   ", "", ErrEmptyName},
		{"too long", strings.Repeat("x", MaxNameLength+1), "", ErrNameTooLong},
		{"max length", strings.Repeat("é", MaxNameLength), strings.Repeat("é", MaxNameLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.input, share.Default(), now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if b.Name != tt.want {
				t.Errorf("Name = %q, want %q", b.Name, tt.want)
			}
			if !b.CreatedAt.Equal(now) || !b.UpdatedAt.Equal(now) {
				t.Errorf("timestamps = %v/%v, want %v", b.CreatedAt, b.UpdatedAt, now)
			}
		})
	}
}
