package command

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// DeleteSkillRequest is the request for the DeleteSkill command.
type DeleteSkillRequest struct {
	UserID  string
	SkillID string
}

// DeleteSkill removes a user's skill from the store and the vector index.
type DeleteSkill struct {
	SkillGetter  datasources.SkillGetter
	SkillDeleter datasources.SkillDeleter
	Indexer      datasources.SkillVectorIndexer
}

var _ Command[DeleteSkillRequest, Empty] = (*DeleteSkill)(nil)

func NewDeleteSkill(
	skillGetter datasources.SkillGetter,
	skillDeleter datasources.SkillDeleter,
	indexer datasources.SkillVectorIndexer,
) *DeleteSkill {
	return &DeleteSkill{
		SkillGetter:  skillGetter,
		SkillDeleter: skillDeleter,
		Indexer:      indexer,
	}
}

func (c *DeleteSkill) Execute(ctx context.Context, req DeleteSkillRequest) (Empty, error) {
	existing, err := c.SkillGetter.GetSkill(ctx, req.SkillID)
	if err != nil {
		return Empty{}, fmt.Errorf("%w: getting skill: %w", domain.ErrUpstreamFailure, err)
	}
	if existing == nil || existing.UserID != req.UserID {
		return Empty{}, ErrSkillNotFound
	}

	if err := c.SkillDeleter.DeleteSkill(ctx, req.SkillID); err != nil {
		return Empty{}, fmt.Errorf("%w: deleting skill: %w", domain.ErrUpstreamFailure, err)
	}

	if err := c.Indexer.DeleteSkillVector(ctx, req.SkillID); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to remove skill vector from index",
			"skill_id", req.SkillID, "error", err)
	}

	return Empty{}, nil
}
