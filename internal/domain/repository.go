package domain

import "context"

// Embedder maps text to a fixed-length dense vector. Implementations must be
// deterministic: the same input text always yields the same vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
