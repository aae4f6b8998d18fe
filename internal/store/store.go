package store

import (
	"context"

	"github.com/faideww/monkey-menu/internal/monkey"
)

// Store journals the random picks of one menu session.
type Store interface {
	Add(ctx context.Context, p monkey.Pick) error
	TopPicked(ctx context.Context, limit int) ([]monkey.PickCount, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

var _ Store = (*SQLiteStore)(nil)
