package datasources

import (
	"context"

	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// SkillRepository combines all skill and user storage operations.
type SkillRepository interface {
	UserSkillsLister
	SkillFetcher
	SkillGetter
	SkillUpserter
	SkillDeleter
	SkillsForReembeddingLister
	UserGetter
}

// UserSkillsLister lists a user's skills in a stable order. An empty mode lists both modes.
type UserSkillsLister interface {
	ListUserSkills(ctx context.Context, userID string, mode domain.SkillMode) ([]domain.Skill, error)
}

// SkillFetcher fetches skills by ID, preserving the order of ids.
// IDs that do not exist are omitted.
type SkillFetcher interface {
	FetchSkillsByID(ctx context.Context, ids []string) ([]domain.Skill, error)
}

// SkillGetter returns a single skill, or nil when it does not exist.
type SkillGetter interface {
	GetSkill(ctx context.Context, id string) (*domain.Skill, error)
}

type SkillUpserter interface {
	UpsertSkill(ctx context.Context, skill domain.Skill) error
}

type SkillDeleter interface {
	DeleteSkill(ctx context.Context, id string) error
}

// SkillsForReembeddingLister lists skills with no embedding or with one
// produced by a model other than model.
type SkillsForReembeddingLister interface {
	ListSkillsForReembedding(ctx context.Context, model string, limit int) ([]domain.Skill, error)
}

// UserGetter returns a user, or nil when it does not exist.
type UserGetter interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
