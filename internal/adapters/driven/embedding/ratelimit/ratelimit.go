// Package ratelimit wraps an embedding service with a token-bucket limit
// on backend requests.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default limits, used when a config value is zero.
const (
	DefaultRequestsPerSecond = 20.0
	DefaultBurst             = 10
)

// Config holds the limiter configuration.
type Config struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int
}

// EmbeddingService limits calls to an inner embedding service. Each
// Embed or EmbedBatch call consumes one token. Ping and metadata calls
// are not limited.
type EmbeddingService struct {
	inner   driven.EmbeddingService
	limiter *rate.Limiter
}

// New wraps inner with a rate limiter.
func New(inner driven.EmbeddingService, cfg Config) *EmbeddingService {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	return &EmbeddingService{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// Embed waits for a token, then embeds text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return s.inner.Embed(ctx, text)
}

// EmbedBatch waits for a token, then embeds texts in one backend call.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return s.inner.EmbedBatch(ctx, texts)
}

// Dimensions returns the inner service's vector size.
func (s *EmbeddingService) Dimensions() int { return s.inner.Dimensions() }

// ModelName returns the inner service's model name.
func (s *EmbeddingService) ModelName() string { return s.inner.ModelName() }

// Ping checks the inner service.
func (s *EmbeddingService) Ping(ctx context.Context) error { return s.inner.Ping(ctx) }

// Close closes the inner service.
func (s *EmbeddingService) Close() error { return s.inner.Close() }

// Allow reports whether a call could proceed without waiting.
func (s *EmbeddingService) Allow() bool {
	return s.limiter.Tokens() >= 1
}
