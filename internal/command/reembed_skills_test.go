package command

import (
	"context"
	"errors"
	"testing"

	"github.com/shamanshetty/TradeCraft/internal/datasources/mocks"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReembedSkills_Execute(t *testing.T) {
	lister := mocks.NewMockSkillsForReembeddingLister(t)
	upserter := mocks.NewMockSkillUpserter(t)
	embedder := mocks.NewMockEmbedder(t)
	indexer := mocks.NewMockSkillVectorIndexer(t)

	lister.EXPECT().ListSkillsForReembedding(mock.Anything, "test-model-v1", 50).Return([]domain.Skill{
		{ID: "ok", UserID: "u1", Mode: domain.SkillModeTeach, Name: "Python", Level: 3},
		{ID: "bad", UserID: "u1", Mode: domain.SkillModeLearn, Name: "Chess", Level: 2},
	}, nil)
	embedder.EXPECT().EmbedText(mock.Anything, "Teach Python at intermediate level (3/5)").Return([]float32{1, 1}, nil)
	embedder.EXPECT().EmbedText(mock.Anything, "Learn Chess at elementary level (2/5)").Return(nil, errors.New("timeout"))
	upserter.EXPECT().UpsertSkill(mock.Anything, mock.MatchedBy(func(s domain.Skill) bool {
		return s.ID == "ok" && s.EmbeddingModel == "test-model-v1"
	})).Return(nil)
	indexer.EXPECT().UpsertSkillVector(mock.Anything, mock.Anything).Return(nil)

	cmd := NewReembedSkills(lister, upserter, embedder, indexer, ReembedSkillsConfig{
		Embedding: testEmbeddingConfig(),
		BatchSize: 50,
	})

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := cmd.Execute(ctx, ReembedSkillsRequest{})
	require.NoError(t, err)
	assert.Equal(t, ReembedSkillsResponse{Reembedded: 1, Failed: 1}, resp)
}

func TestReembedSkills_Execute_ListError(t *testing.T) {
	lister := mocks.NewMockSkillsForReembeddingLister(t)
	lister.EXPECT().ListSkillsForReembedding(mock.Anything, mock.Anything, 5).Return(nil, errors.New("db down"))

	cmd := NewReembedSkills(lister, nil, nil, nil, ReembedSkillsConfig{Embedding: testEmbeddingConfig(), BatchSize: 50})

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, ReembedSkillsRequest{BatchSize: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing skills for re-embedding")
}
