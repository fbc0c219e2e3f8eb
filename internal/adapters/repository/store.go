// Package repository defines the athlete record store interface and its
// file-backed implementation.
package repository

import (
	"context"

	"github.com/adurand33/Performance/internal/domain/model"
)

// Store provides read-only access to the athlete record dataset.
type Store interface {
	// Athletes returns the known athlete names, sorted.
	Athletes(ctx context.Context) ([]string, error)

	// Records returns the records for one athlete, in store order.
	// Returns ErrUnknownAthlete if the athlete is not in the dataset.
	Records(ctx context.Context, athlete string) ([]model.Record, error)

	// Snapshot returns the whole dataset. On a read or parse failure
	// it returns an empty dataset together with the error.
	Snapshot(ctx context.Context) (model.Dataset, error)

	// Count returns the number of athletes tracked by the store.
	Count(ctx context.Context) int
}
