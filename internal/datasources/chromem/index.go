package chromem

import (
	"context"
	"fmt"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

var _ datasources.SimilarityRepository = (*Index)(nil)

const collectionName = "skills"

// Config configures the embedded vector index. An empty PersistDir keeps the
// index in memory only.
type Config struct {
	PersistDir string
	Compress   bool
}

// Index is an embedded vector index over skill embeddings, for single-node
// deployments that do not want an external vector database.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
}

func NewIndex(config Config) (*Index, error) {
	var db *chromem.DB
	if config.PersistDir == "" {
		db = chromem.NewDB()
	} else {
		var err error
		db, err = chromem.NewPersistentDB(config.PersistDir, config.Compress)
		if err != nil {
			return nil, fmt.Errorf("creating chromem db: %w", err)
		}
	}

	// Embeddings are always supplied by the caller, so no embedding func is needed.
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return &Index{
		db:         db,
		collection: collection,
	}, nil
}

func (i *Index) UpsertSkillVector(ctx context.Context, skill domain.Skill) error {
	if !skill.HasEmbedding() {
		return i.DeleteSkillVector(ctx, skill.ID)
	}

	content := skill.CanonicalText
	if content == "" {
		content = domain.CanonicalizeSkill(skill)
	}

	doc := chromem.Document{
		ID:      skill.ID,
		Content: content,
		Metadata: map[string]string{
			"user_id":   skill.UserID,
			"mode":      string(skill.Mode),
			"dimension": strconv.Itoa(len(skill.Embedding)),
		},
		Embedding: skill.Embedding,
	}
	if err := i.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("adding vector for skill [%s]: %w", skill.ID, err)
	}
	return nil
}

func (i *Index) DeleteSkillVector(ctx context.Context, skillID string) error {
	if err := i.collection.Delete(ctx, nil, nil, skillID); err != nil {
		return fmt.Errorf("deleting vector for skill [%s]: %w", skillID, err)
	}
	return nil
}

// ListSimilarSkills queries the collection for the nearest skills of the given
// mode. The metadata filter only supports equality, so results owned by
// excludeUserID are dropped here and the query is widened until enough
// remain or the collection is exhausted.
func (i *Index) ListSimilarSkills(
	ctx context.Context,
	vector []float32,
	mode domain.SkillMode,
	limit int,
	excludeUserID string,
) ([]domain.SimilarSkill, error) {
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	where := map[string]string{
		"mode":      string(mode),
		"dimension": strconv.Itoa(len(vector)),
	}

	count := i.collection.Count()
	n := limit * 2
	for {
		if n > count {
			n = count
		}
		if n == 0 {
			return []domain.SimilarSkill{}, nil
		}

		results, err := i.collection.QueryEmbedding(ctx, vector, n, where, nil)
		if err != nil {
			return nil, fmt.Errorf("querying similar vectors: %w", err)
		}

		hits := make([]domain.SimilarSkill, 0, limit)
		for _, r := range results {
			if r.Metadata["user_id"] == excludeUserID {
				continue
			}
			hits = append(hits, domain.SimilarSkill{
				SkillID: r.ID,
				Score:   float64(r.Similarity),
			})
			if len(hits) == limit {
				break
			}
		}

		if len(hits) == limit || len(results) < n || n == count {
			return hits, nil
		}
		n *= 2
	}
}

// Count returns the number of indexed skill vectors.
func (i *Index) Count() int {
	return i.collection.Count()
}
