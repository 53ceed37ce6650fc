package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// ErrSkillNotFound is returned when a skill does not exist or belongs to another user.
var ErrSkillNotFound = errors.New("skill not found")

// UpsertSkillRequest is the request for the UpsertSkill command. An empty
// Skill.ID creates a new skill.
type UpsertSkillRequest struct {
	Skill domain.Skill
}

// UpsertSkill validates, embeds and stores a skill.
type UpsertSkill struct {
	SkillGetter   datasources.SkillGetter
	SkillUpserter datasources.SkillUpserter
	Embedder      datasources.Embedder
	Indexer       datasources.SkillVectorIndexer
	Config        EmbeddingConfig
}

var _ Command[UpsertSkillRequest, domain.Skill] = (*UpsertSkill)(nil)

// NewUpsertSkill creates a properly initialized UpsertSkill command.
func NewUpsertSkill(
	skillGetter datasources.SkillGetter,
	skillUpserter datasources.SkillUpserter,
	embedder datasources.Embedder,
	indexer datasources.SkillVectorIndexer,
	config EmbeddingConfig,
) *UpsertSkill {
	return &UpsertSkill{
		SkillGetter:   skillGetter,
		SkillUpserter: skillUpserter,
		Embedder:      embedder,
		Indexer:       indexer,
		Config:        config,
	}
}

// Execute stores the skill, re-embedding it only when its canonical text or
// the embedding model changed.
func (c *UpsertSkill) Execute(ctx context.Context, req UpsertSkillRequest) (domain.Skill, error) {
	skill := req.Skill
	skill.Name = strings.TrimSpace(skill.Name)
	if err := skill.Validate(); err != nil {
		return domain.Skill{}, err
	}

	var previous *domain.Skill
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	} else {
		existing, err := c.SkillGetter.GetSkill(ctx, skill.ID)
		if err != nil {
			return domain.Skill{}, fmt.Errorf("%w: getting existing skill: %w", domain.ErrUpstreamFailure, err)
		}
		if existing != nil && existing.UserID != skill.UserID {
			return domain.Skill{}, ErrSkillNotFound
		}
		previous = existing
	}

	logger := domain.LoggerFromContext(ctx).With("skill_id", skill.ID, "user_id", skill.UserID)
	ctx = domain.ContextWithLogger(ctx, logger)

	canonical := domain.CanonicalizeSkill(skill)
	if needsEmbedding(previous, canonical, c.Config.Model) {
		embedded, err := embedSkill(ctx, c.Embedder, c.Config, skill)
		if err != nil {
			return domain.Skill{}, err
		}
		skill = embedded
		logger.DebugContext(ctx, "embedded skill", "canonical_text", skill.CanonicalText)
	} else {
		skill.CanonicalText = previous.CanonicalText
		skill.Embedding = previous.Embedding
		skill.EmbeddingModel = previous.EmbeddingModel
	}

	if err := c.SkillUpserter.UpsertSkill(ctx, skill); err != nil {
		return domain.Skill{}, fmt.Errorf("%w: storing skill: %w", domain.ErrUpstreamFailure, err)
	}

	syncSkillVector(ctx, c.Indexer, skill)

	return skill, nil
}
