package blobstore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultCopyConcurrency bounds parallel transfers during Copy.
const defaultCopyConcurrency = 4

// Copy transfers the named blobs from src to dst, up to
// defaultCopyConcurrency at a time. It is used to replicate snapshots
// between stores, e.g. local disk to S3.
//
// The first error cancels the remaining transfers.
func Copy(ctx context.Context, dst, src Store, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultCopyConcurrency)

	for _, name := range names {
		g.Go(func() error {
			data, err := ReadAll(ctx, src, name)
			if err != nil {
				return err
			}
			return dst.Put(ctx, name, data)
		})
	}

	return g.Wait()
}
