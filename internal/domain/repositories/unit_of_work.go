package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic multi-document writes.
// Plan generation persists a plan and its achievement inside one Do
// scope so a failure cannot strand a plan without its achievement.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
