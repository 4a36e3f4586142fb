package interfaces

import "context"

// Completer answers a single text prompt with a single text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
