package interfaces

import "context"

// Refresher starts a dataset rebuild without waiting for it.
type Refresher interface {
	RefreshAsync(ctx context.Context) error
}
