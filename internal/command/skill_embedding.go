package command

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// EmbeddingConfig identifies the embedding model in use.
type EmbeddingConfig struct {
	// Model is stored with each embedding so a model change can trigger a re-embed.
	Model string

	// Dimension is the expected vector length. Zero disables the check.
	Dimension int
}

// needsEmbedding reports whether skill must be (re-)embedded given the
// version previously stored, which may be nil.
func needsEmbedding(previous *domain.Skill, canonical, model string) bool {
	if previous == nil || !previous.HasEmbedding() {
		return true
	}
	return previous.CanonicalText != canonical || previous.EmbeddingModel != model
}

// embedSkill sets the canonical text and a unit-length embedding on skill.
// An embedder that returns no vector leaves the skill without an embedding.
func embedSkill(
	ctx context.Context,
	embedder datasources.Embedder,
	config EmbeddingConfig,
	skill domain.Skill,
) (domain.Skill, error) {
	skill.CanonicalText = domain.CanonicalizeSkill(skill)

	vector, err := embedder.EmbedText(ctx, skill.CanonicalText)
	if err != nil {
		return skill, fmt.Errorf("%w: embedding skill: %w", domain.ErrUpstreamFailure, err)
	}
	if len(vector) == 0 {
		skill.Embedding = nil
		skill.EmbeddingModel = ""
		return skill, nil
	}
	if config.Dimension > 0 && len(vector) != config.Dimension {
		return skill, fmt.Errorf("%w: embedding has dimension [%d], expected [%d]",
			domain.ErrUpstreamFailure, len(vector), config.Dimension)
	}

	skill.Embedding = domain.Normalize(vector)
	skill.EmbeddingModel = config.Model
	return skill, nil
}

// syncSkillVector mirrors the skill's embedding into the vector index. Index
// failures are logged and do not fail the caller; the reembed job repairs them.
func syncSkillVector(ctx context.Context, indexer datasources.SkillVectorIndexer, skill domain.Skill) {
	logger := domain.LoggerFromContext(ctx)

	var err error
	if skill.HasEmbedding() {
		err = indexer.UpsertSkillVector(ctx, skill)
	} else {
		err = indexer.DeleteSkillVector(ctx, skill.ID)
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to sync skill vector index", "skill_id", skill.ID, "error", err)
	}
}
