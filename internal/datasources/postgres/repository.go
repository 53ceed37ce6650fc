package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

var _ datasources.SkillRepository = (*Repository)(nil)
var _ datasources.SimilarSkillsLister = (*Repository)(nil)

// Repository stores skills in Postgres and answers similarity queries with
// the pgvector cosine distance operator.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var skillColumns = []string{
	"id", "user_id", "mode", "name", "level", "availability",
	"canonical_text", "embedding::text", "embedding_model",
}

func (r *Repository) ListUserSkills(
	ctx context.Context,
	userID string,
	mode domain.SkillMode,
) ([]domain.Skill, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(skillColumns...)
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

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(skillColumns...)
	sb.From("skills")
	sb.Where("id = ANY(" + sb.Var(ids) + ")")

	query, args := sb.Build()
	skills, err := r.querySkills(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("fetching skills by ID: %w", err)
	}

	byID := make(map[string]domain.Skill, len(skills))
	for _, s := range skills {
		byID[s.ID] = s
	}

	result := make([]domain.Skill, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
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
	var availability []byte
	if len(skill.Availability) > 0 {
		b, err := json.Marshal(skill.Availability)
		if err != nil {
			return fmt.Errorf("encoding availability: %w", err)
		}
		availability = b
	}

	var embedding, embeddingModel *string
	if skill.HasEmbedding() {
		literal := formatVector(skill.Embedding)
		embedding = &literal
	}
	if skill.EmbeddingModel != "" {
		embeddingModel = &skill.EmbeddingModel
	}

	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("skills")
	ib.Cols("id", "user_id", "mode", "name", "level", "availability",
		"canonical_text", "embedding", "embedding_model")
	ib.Values(
		skill.ID,
		skill.UserID,
		string(skill.Mode),
		skill.Name,
		skill.Level,
		availability,
		skill.CanonicalText,
		embedding,
		embeddingModel,
	)
	ib.SQL("ON CONFLICT (id) DO UPDATE SET " +
		"mode = EXCLUDED.mode, name = EXCLUDED.name, level = EXCLUDED.level, " +
		"availability = EXCLUDED.availability, canonical_text = EXCLUDED.canonical_text, " +
		"embedding = EXCLUDED.embedding, embedding_model = EXCLUDED.embedding_model, " +
		"updated_at = now()")

	query, args := ib.Build()
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting skill [%s]: %w", skill.ID, err)
	}
	return nil
}

func (r *Repository) DeleteSkill(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM skills WHERE id = $1", id); err != nil {
		return fmt.Errorf("deleting skill [%s]: %w", id, err)
	}
	return nil
}

func (r *Repository) ListSkillsForReembedding(
	ctx context.Context,
	model string,
	limit int,
) ([]domain.Skill, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(skillColumns...)
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
	var user domain.User
	var language *string
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, preferred_language FROM users WHERE id = $1", id,
	).Scan(&user.ID, &user.Name, &language)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting user [%s]: %w", id, err)
	}
	if language != nil {
		user.PreferredLanguage = *language
	}
	return &user, nil
}

// UpsertUser stores a user's profile. Used for seeding and tests.
func (r *Repository) UpsertUser(ctx context.Context, user domain.User) error {
	var language *string
	if user.PreferredLanguage != "" {
		language = &user.PreferredLanguage
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, name, preferred_language) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, preferred_language = EXCLUDED.preferred_language`,
		user.ID, user.Name, language,
	)
	if err != nil {
		return fmt.Errorf("upserting user [%s]: %w", user.ID, err)
	}
	return nil
}

// ListSimilarSkills ranks stored skills by cosine similarity using pgvector.
// Skills whose embedding dimension differs from the query vector are ignored.
func (r *Repository) ListSimilarSkills(
	ctx context.Context,
	vector []float32,
	mode domain.SkillMode,
	limit int,
	excludeUserID string,
) ([]domain.SimilarSkill, error) {
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	literal := sb.Var(formatVector(vector))
	sb.Select("id", "1 - (embedding <=> "+literal+"::vector) AS similarity")
	sb.From("skills")
	sb.Where(
		sb.Equal("mode", string(mode)),
		sb.NotEqual("user_id", excludeUserID),
		sb.IsNotNull("embedding"),
		sb.Equal("vector_dims(embedding)", len(vector)),
	)
	sb.OrderBy("embedding <=> "+literal+"::vector", "id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying similar skills: %w", err)
	}
	defer rows.Close()

	var results []domain.SimilarSkill
	for rows.Next() {
		var id string
		var similarity *float64
		if err := rows.Scan(&id, &similarity); err != nil {
			return nil, fmt.Errorf("scanning similar skill: %w", err)
		}
		// Zero-norm vectors produce a NaN distance, which comes back as NULL or NaN.
		score := 0.0
		if similarity != nil {
			score = *similarity
		}
		results = append(results, domain.SimilarSkill{SkillID: id, Score: clampSimilarity(score)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}

func (r *Repository) querySkills(ctx context.Context, query string, args []interface{}) ([]domain.Skill, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running skills query: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var (
			skill          domain.Skill
			mode           string
			availability   []byte
			canonicalText  *string
			embedding      *string
			embeddingModel *string
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
			return nil, fmt.Errorf("scanning skill: %w", err)
		}

		skill.Mode = domain.SkillMode(mode)
		if canonicalText != nil {
			skill.CanonicalText = *canonicalText
		}
		if embeddingModel != nil {
			skill.EmbeddingModel = *embeddingModel
		}
		if len(availability) > 0 {
			if err := json.Unmarshal(availability, &skill.Availability); err != nil {
				return nil, fmt.Errorf("decoding availability for skill [%s]: %w", skill.ID, err)
			}
		}
		if embedding != nil {
			vector, err := parseVector(*embedding)
			if err != nil {
				return nil, fmt.Errorf("decoding embedding for skill [%s]: %w", skill.ID, err)
			}
			skill.Embedding = vector
		}

		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return skills, nil
}
