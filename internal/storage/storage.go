// Package storage resolves background clips and persists finished
// artifacts, locally or backed by a GCS bucket.
package storage

import "context"

// BackgroundProvider resolves a background style name to a playable
// local clip path.
type BackgroundProvider interface {
	ClipFor(ctx context.Context, background string) (string, error)
}
