package datasources

import (
	"context"

	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// MatchCache stores ranked match results under an opaque key.
type MatchCache interface {
	// GetMatches returns nil on a cache miss.
	GetMatches(ctx context.Context, key string) (*domain.MatchResult, error)
	SetMatches(ctx context.Context, key string, result domain.MatchResult) error
}

// NullMatchCache is a null implementation of MatchCache that never hits.
type NullMatchCache struct{}

var _ MatchCache = NullMatchCache{}

func (NullMatchCache) GetMatches(_ context.Context, _ string) (*domain.MatchResult, error) {
	return nil, nil
}

func (NullMatchCache) SetMatches(_ context.Context, _ string, _ domain.MatchResult) error {
	return nil
}
