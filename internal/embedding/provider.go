// Package embedding provides text embedding generation for semantic
// similarity scoring.
package embedding

import "context"

// Provider converts text into a fixed-length numeric vector. Vectors are
// mean-pooled over the model's token representations and normalized to unit
// length, so cosine similarity between them measures semantic closeness.
//
// Implementations must be safe for concurrent use; one provider is shared by
// every scoring run in the process.
type Provider interface {
	// Embed generates a vector representation of the given text. The
	// dimensionality is fixed for the lifetime of the provider.
	Embed(ctx context.Context, text string) ([]float64, error)
}
