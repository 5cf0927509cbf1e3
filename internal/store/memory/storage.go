// Package memory implements the repositories in process memory. It backs
// tests and deployments without MONGO_URI.
package memory

import "context"

// Storage has no transactions; WithTransaction runs fn directly.
type Storage struct{}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Close(ctx context.Context) error {
	return nil
}
