package datasources

import (
	"context"

	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// SimilarityRepository combines similarity search with index maintenance.
type SimilarityRepository interface {
	SimilarSkillsLister
	SkillVectorIndexer
}

// SimilarSkillsLister finds the skills of the given mode whose embeddings are
// closest to vector, best first, never returning skills owned by excludeUserID.
type SimilarSkillsLister interface {
	ListSimilarSkills(
		ctx context.Context,
		vector []float32,
		mode domain.SkillMode,
		limit int,
		excludeUserID string,
	) ([]domain.SimilarSkill, error)
}

// SkillVectorIndexer keeps an external vector index in step with the skill store.
type SkillVectorIndexer interface {
	UpsertSkillVector(ctx context.Context, skill domain.Skill) error
	DeleteSkillVector(ctx context.Context, skillID string) error
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) ListSimilarSkills(
	_ context.Context,
	_ []float32,
	_ domain.SkillMode,
	_ int,
	_ string,
) ([]domain.SimilarSkill, error) {
	return nil, nil
}

func (NullSimilarityRepository) UpsertSkillVector(_ context.Context, _ domain.Skill) error {
	return nil
}

func (NullSimilarityRepository) DeleteSkillVector(_ context.Context, _ string) error {
	return nil
}

// StoreSimilarity serves similarity search from the skill store itself and
// ignores index maintenance, since the store already holds the vectors.
type StoreSimilarity struct {
	SimilarSkillsLister
}

var _ SimilarityRepository = StoreSimilarity{}

func (StoreSimilarity) UpsertSkillVector(_ context.Context, _ domain.Skill) error {
	return nil
}

func (StoreSimilarity) DeleteSkillVector(_ context.Context, _ string) error {
	return nil
}
