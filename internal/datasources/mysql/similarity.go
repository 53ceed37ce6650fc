package mysql

import (
	"cmp"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/huandu/go-sqlbuilder"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// ListSimilarSkills scores every stored skill of the given mode against the
// query vector and returns the best limit matches. MySQL has no vector index,
// so this is a full scan and only suited to small deployments and tests.
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

	sb := sqlbuilder.Select("id", "embedding")
	sb.From("skills")
	sb.Where(
		sb.Equal("mode", string(mode)),
		sb.NotEqual("user_id", excludeUserID),
		sb.IsNotNull("embedding"),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying skill embeddings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []domain.SimilarSkill
	for rows.Next() {
		var id string
		var embedding []byte
		if err := rows.Scan(&id, &embedding); err != nil {
			return nil, fmt.Errorf("scanning skill embedding: %w", err)
		}

		candidate, err := bytesToFloat32Slice(embedding)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for skill [%s]: %w", id, err)
		}
		if len(candidate) != len(vector) {
			continue
		}

		results = append(results, domain.SimilarSkill{
			SkillID: id,
			Score:   domain.CosineSimilarity(vector, candidate),
		})
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return topSimilar(results, limit), nil
}

func topSimilar(results []domain.SimilarSkill, limit int) []domain.SimilarSkill {
	slices.SortFunc(results, func(a, b domain.SimilarSkill) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.SkillID, b.SkillID)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Helper functions for binary vector serialization

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}
