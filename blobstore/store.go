package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting index snapshots as named blobs.
//
// Snapshots are written and read whole, so the interface is deliberately
// coarse: no partial reads, no streaming writes. Implementations must be
// safe for concurrent use.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Put writes a blob atomically, replacing any existing blob of the
	// same name.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ReadAll opens the named blob and reads it fully.
func ReadAll(ctx context.Context, s Store, name string) ([]byte, error) {
	r, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
