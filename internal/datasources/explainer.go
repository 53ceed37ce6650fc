package datasources

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/domain"
	"golang.org/x/time/rate"
)

// MatchExplainer writes a short prose explanation of why a match is good.
// An empty result means no explanation was produced.
type MatchExplainer interface {
	ExplainMatch(ctx context.Context, req domain.ExplanationRequest) (string, error)
}

// NullMatchExplainer is a null implementation of MatchExplainer.
type NullMatchExplainer struct{}

var _ MatchExplainer = NullMatchExplainer{}

func (NullMatchExplainer) ExplainMatch(_ context.Context, _ domain.ExplanationRequest) (string, error) {
	return "", nil
}

// RateLimitedExplainer holds calls to the wrapped explainer to a fixed rate.
type RateLimitedExplainer struct {
	Explainer MatchExplainer
	Limiter   *rate.Limiter
}

var _ MatchExplainer = (*RateLimitedExplainer)(nil)

func NewRateLimitedExplainer(explainer MatchExplainer, perMinute, burst int) *RateLimitedExplainer {
	return &RateLimitedExplainer{
		Explainer: explainer,
		Limiter:   rate.NewLimiter(rate.Limit(float64(perMinute)/60), burst),
	}
}

func (e *RateLimitedExplainer) ExplainMatch(ctx context.Context, req domain.ExplanationRequest) (string, error) {
	if err := e.Limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for explainer rate limit: %w", err)
	}
	return e.Explainer.ExplainMatch(ctx, req)
}
