package repo

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Storage is the backing store shared by the repositories. Implementations
// without transactions run fn directly.
type Storage interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
