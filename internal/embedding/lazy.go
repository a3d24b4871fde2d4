package embedding

import (
	"context"
	"sync"
)

// Builder constructs a Provider. Used by LazyProvider to defer expensive
// provider construction until the first embedding is actually needed.
type Builder func(ctx context.Context) (Provider, error)

// LazyProvider wraps a Builder and constructs the underlying provider at
// most once, on first use. Concurrent first calls are safe: exactly one
// construction runs and every caller observes its outcome. A construction
// failure is cached, so every subsequent call fails with UnavailableError
// without retrying (re-triggering a scoring run is the caller's decision).
type LazyProvider struct {
	build Builder

	once     sync.Once
	provider Provider
	err      error
}

// NewLazyProvider creates a provider that defers construction to first use.
func NewLazyProvider(build Builder) *LazyProvider {
	return &LazyProvider{build: build}
}

// Embed constructs the underlying provider if needed, then delegates to it.
func (l *LazyProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	l.once.Do(func() {
		l.provider, l.err = l.build(ctx)
	})
	if l.err != nil {
		return nil, &UnavailableError{Message: "provider initialization failed", Cause: l.err}
	}
	return l.provider.Embed(ctx, text)
}
