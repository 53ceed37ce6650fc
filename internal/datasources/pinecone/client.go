package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

// maxTopK is the largest result count Pinecone accepts for a single query.
const maxTopK = 10000

type Client struct {
	pinecone  *pinecone.Client
	index     *pinecone.Index
	namespace string
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
	namespace string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone:  pc,
		index:     idx,
		namespace: namespace,
	}, nil
}

func (c *Client) ListSimilarSkills(
	ctx context.Context,
	vector []float32,
	mode domain.SkillMode,
	limit int,
	excludeUserID string,
) ([]domain.SimilarSkill, error) {
	if limit > maxTopK {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	filter, err := similarSkillsFilter(mode, excludeUserID)
	if err != nil {
		return nil, err
	}

	var results []domain.SimilarSkill
	err = c.withIndexConnection(func(idxConn *pinecone.IndexConnection) error {
		resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
			Vector:          vector,
			TopK:            uint32(limit), //nolint:gosec // bounded by maxTopK
			MetadataFilter:  filter,
			IncludeValues:   false,
			IncludeMetadata: false,
			SparseValues:    nil,
		})
		if err != nil {
			return fmt.Errorf("querying for similar vectors: %w", err)
		}

		results = make([]domain.SimilarSkill, 0, len(resp.Matches))
		for _, scored := range resp.Matches {
			if scored == nil || scored.Vector == nil {
				continue
			}
			results = append(results, domain.SimilarSkill{
				SkillID: scored.Vector.Id,
				Score:   float64(scored.Score),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertSkillVector stores the skill's embedding keyed by skill ID, with the
// owner and mode as metadata so queries can filter on them.
func (c *Client) UpsertSkillVector(ctx context.Context, skill domain.Skill) error {
	if !skill.HasEmbedding() {
		return c.DeleteSkillVector(ctx, skill.ID)
	}

	metadata, err := structpb.NewStruct(map[string]any{
		"user_id": skill.UserID,
		"mode":    string(skill.Mode),
	})
	if err != nil {
		return fmt.Errorf("creating vector metadata: %w", err)
	}

	return c.withIndexConnection(func(idxConn *pinecone.IndexConnection) error {
		_, err := idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
			Id:       skill.ID,
			Values:   skill.Embedding,
			Metadata: metadata,
		}})
		if err != nil {
			return fmt.Errorf("upserting vector for skill [%s]: %w", skill.ID, err)
		}
		return nil
	})
}

func (c *Client) DeleteSkillVector(ctx context.Context, skillID string) error {
	return c.withIndexConnection(func(idxConn *pinecone.IndexConnection) error {
		if err := idxConn.DeleteVectorsById(ctx, []string{skillID}); err != nil {
			return fmt.Errorf("deleting vector for skill [%s]: %w", skillID, err)
		}
		return nil
	})
}

func (c *Client) withIndexConnection(fn func(*pinecone.IndexConnection) error) error {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: c.namespace,
	})
	if err != nil {
		return fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	return fn(idxConn)
}

func similarSkillsFilter(mode domain.SkillMode, excludeUserID string) (*pinecone.MetadataFilter, error) {
	metadataMap := map[string]any{
		"mode": map[string]any{
			"$eq": string(mode),
		},
	}
	if excludeUserID != "" {
		metadataMap["user_id"] = map[string]any{
			"$ne": excludeUserID,
		}
	}

	filter, err := structpb.NewStruct(metadataMap)
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}
