package command

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// ReembedSkillsRequest is the request for the ReembedSkills command.
type ReembedSkillsRequest struct {
	// BatchSize overrides the configured batch size when positive.
	BatchSize int
}

// ReembedSkillsResponse counts the outcome of one batch.
type ReembedSkillsResponse struct {
	Reembedded int
	Failed     int
}

// ReembedSkillsConfig holds configuration for the re-embedding job.
type ReembedSkillsConfig struct {
	Embedding EmbeddingConfig

	// BatchSize is how many stale skills are processed per run.
	BatchSize int
}

// ReembedSkills embeds skills that have no embedding or whose embedding was
// produced by a different model, and refreshes the vector index for them.
type ReembedSkills struct {
	Lister        datasources.SkillsForReembeddingLister
	SkillUpserter datasources.SkillUpserter
	Embedder      datasources.Embedder
	Indexer       datasources.SkillVectorIndexer
	Config        ReembedSkillsConfig
}

var _ Command[ReembedSkillsRequest, ReembedSkillsResponse] = (*ReembedSkills)(nil)

// NewReembedSkills creates a properly initialized ReembedSkills command.
func NewReembedSkills(
	lister datasources.SkillsForReembeddingLister,
	skillUpserter datasources.SkillUpserter,
	embedder datasources.Embedder,
	indexer datasources.SkillVectorIndexer,
	config ReembedSkillsConfig,
) *ReembedSkills {
	return &ReembedSkills{
		Lister:        lister,
		SkillUpserter: skillUpserter,
		Embedder:      embedder,
		Indexer:       indexer,
		Config:        config,
	}
}

// Execute processes one batch. A failure on one skill is logged and counted
// and does not stop the batch.
func (c *ReembedSkills) Execute(ctx context.Context, req ReembedSkillsRequest) (ReembedSkillsResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = c.Config.BatchSize
	}

	skills, err := c.Lister.ListSkillsForReembedding(ctx, c.Config.Embedding.Model, batchSize)
	if err != nil {
		return ReembedSkillsResponse{}, fmt.Errorf("listing skills for re-embedding: %w", err)
	}

	if len(skills) == 0 {
		logger.InfoContext(ctx, "no skills need re-embedding")
		return ReembedSkillsResponse{}, nil
	}

	logger.InfoContext(ctx, "starting skill re-embedding", "skill_count", len(skills))

	var resp ReembedSkillsResponse
	for _, skill := range skills {
		if err := ctx.Err(); err != nil {
			return resp, fmt.Errorf("re-embedding interrupted: %w", err)
		}
		if err := c.reembedSkill(ctx, skill); err != nil {
			logger.ErrorContext(ctx, "failed to re-embed skill", "skill_id", skill.ID, "error", err)
			resp.Failed++
			continue
		}
		resp.Reembedded++
	}

	logger.InfoContext(ctx, "skill re-embedding complete",
		"success_count", resp.Reembedded, "fail_count", resp.Failed)

	return resp, nil
}

func (c *ReembedSkills) reembedSkill(ctx context.Context, skill domain.Skill) error {
	embedded, err := embedSkill(ctx, c.Embedder, c.Config.Embedding, skill)
	if err != nil {
		return err
	}
	if !embedded.HasEmbedding() {
		return fmt.Errorf("embedder returned no vector")
	}

	if err := c.SkillUpserter.UpsertSkill(ctx, embedded); err != nil {
		return fmt.Errorf("storing skill: %w", err)
	}

	syncSkillVector(ctx, c.Indexer, embedded)
	return nil
}
