package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

var _ datasources.SkillRepository = (*Repository)(nil)
var _ datasources.SimilarSkillsLister = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var skillColumns = []string{
	"id", "user_id", "mode", "name", "level", "availability",
	"canonical_text", "embedding", "embedding_model",
}

func (r *Repository) ListUserSkills(
	ctx context.Context,
	userID string,
	mode domain.SkillMode,
) ([]domain.Skill, error) {
	sb := sqlbuilder.Select(skillColumns...)
	sb.From("skills")

	conds := []string{sb.Equal("user_id", userID)}
	if mode != "" {
		conds = append(conds, sb.Equal("mode", string(mode)))
	}
	sb.Where(conds...)
	sb.OrderBy("created_at", "id")

	query, args := sb.Build()
	skills, err := r.querySkills(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing skills of user [%s]: %w", userID, err)
	}
	return skills, nil
}

func (r *Repository) FetchSkillsByID(ctx context.Context, ids []string) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idArgs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		idArgs = append(idArgs, id)
	}

	sb := sqlbuilder.Select(skillColumns...)
	sb.From("skills")
	sb.Where(sb.In("id", idArgs...))

	query, args := sb.Build()
	skills, err := r.querySkills(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("fetching skills by ID: %w", err)
	}

	skillMap := make(map[string]domain.Skill, len(skills))
	for _, s := range skills {
		skillMap[s.ID] = s
	}

	// Build results in the same order as the input ids
	result := make([]domain.Skill, 0, len(ids))
	for _, id := range ids {
		if s, ok := skillMap[id]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *Repository) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	skills, err := r.FetchSkillsByID(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, nil
	}
	return &skills[0], nil
}

func (r *Repository) UpsertSkill(ctx context.Context, skill domain.Skill) error {
	availability, err := encodeAvailability(skill.Availability)
	if err != nil {
		return err
	}

	var embedding []byte
	if skill.HasEmbedding() {
		embedding = float32SliceToBytes(skill.Embedding)
	}

	ib := sqlbuilder.InsertInto("skills")
	ib.Cols(skillColumns...)
	ib.Values(
		skill.ID,
		skill.UserID,
		string(skill.Mode),
		skill.Name,
		skill.Level,
		availability,
		skill.CanonicalText,
		embedding,
		nullableString(skill.EmbeddingModel),
	)
	ib.SQL("ON DUPLICATE KEY UPDATE " +
		"mode = VALUES(mode), name = VALUES(name), level = VALUES(level), " +
		"availability = VALUES(availability), canonical_text = VALUES(canonical_text), " +
		"embedding = VALUES(embedding), embedding_model = VALUES(embedding_model)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting skill [%s]: %w", skill.ID, err)
	}
	return nil
}

func (r *Repository) DeleteSkill(ctx context.Context, id string) error {
	db := sqlbuilder.DeleteFrom("skills")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting skill [%s]: %w", id, err)
	}
	return nil
}

func (r *Repository) ListSkillsForReembedding(
	ctx context.Context,
	model string,
	limit int,
) ([]domain.Skill, error) {
	sb := sqlbuilder.Select(skillColumns...)
	sb.From("skills")
	sb.Where(sb.Or(
		sb.IsNull("embedding"),
		sb.IsNull("embedding_model"),
		sb.NotEqual("embedding_model", model),
	))
	sb.OrderBy("updated_at", "id")
	sb.Limit(limit)

	query, args := sb.Build()
	skills, err := r.querySkills(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing skills for re-embedding: %w", err)
	}
	return skills, nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	sb := sqlbuilder.Select("id", "name", "preferred_language")
	sb.From("users")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var user domain.User
	var language sql.NullString
	if err := row.Scan(&user.ID, &user.Name, &language); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting user [%s]: %w", id, err)
	}
	user.PreferredLanguage = language.String
	return &user, nil
}

// UpsertUser stores a user's profile. The matching engine only reads users;
// this exists for seeding and tests.
func (r *Repository) UpsertUser(ctx context.Context, user domain.User) error {
	ib := sqlbuilder.InsertInto("users")
	ib.Cols("id", "name", "preferred_language")
	ib.Values(user.ID, user.Name, nullableString(user.PreferredLanguage))
	ib.SQL("ON DUPLICATE KEY UPDATE name = VALUES(name), preferred_language = VALUES(preferred_language)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting user [%s]: %w", user.ID, err)
	}
	return nil
}

func (r *Repository) querySkills(ctx context.Context, query string, args []interface{}) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running skills query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	skills := []domain.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return skills, nil
}

func scanSkill(rows *sql.Rows) (domain.Skill, error) {
	var (
		skill          domain.Skill
		mode           string
		availability   []byte
		canonicalText  sql.NullString
		embedding      []byte
		embeddingModel sql.NullString
	)
	if err := rows.Scan(
		&skill.ID,
		&skill.UserID,
		&mode,
		&skill.Name,
		&skill.Level,
		&availability,
		&canonicalText,
		&embedding,
		&embeddingModel,
	); err != nil {
		return domain.Skill{}, fmt.Errorf("scanning skill: %w", err)
	}

	skill.Mode = domain.SkillMode(mode)
	skill.CanonicalText = canonicalText.String
	skill.EmbeddingModel = embeddingModel.String

	slots, err := decodeAvailability(availability)
	if err != nil {
		return domain.Skill{}, fmt.Errorf("decoding availability for skill [%s]: %w", skill.ID, err)
	}
	skill.Availability = slots

	if len(embedding) > 0 {
		vector, err := bytesToFloat32Slice(embedding)
		if err != nil {
			return domain.Skill{}, fmt.Errorf("decoding embedding for skill [%s]: %w", skill.ID, err)
		}
		skill.Embedding = vector
	}
	return skill, nil
}

func encodeAvailability(slots []domain.AvailabilitySlot) ([]byte, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(slots)
	if err != nil {
		return nil, fmt.Errorf("encoding availability: %w", err)
	}
	return b, nil
}

func decodeAvailability(b []byte) ([]domain.AvailabilitySlot, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var slots []domain.AvailabilitySlot
	if err := json.Unmarshal(b, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
