package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/datasources/chromem"
	"github.com/shamanshetty/TradeCraft/internal/datasources/openai"
	"github.com/shamanshetty/TradeCraft/internal/datasources/voyageai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupServices_UnknownStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("EMBEDDING_DRIVER", "null")

	_, err := SetupServices(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver [sqlite]")
}

func TestEmbeddingConfigForDriver(t *testing.T) {
	assert.Equal(t, DefaultUpsertSkillConfig(), embeddingConfigForDriver("voyageai"))
	assert.Equal(t, openai.DefaultEmbeddingModel, embeddingConfigForDriver("openai").Model)
}

func TestSetupSimilarityRepository(t *testing.T) {
	cases := []struct {
		name     string
		driver   string
		wantType any
		wantErr  bool
	}{
		{name: "null", driver: "null", wantType: datasources.NullSimilarityRepository{}},
		{name: "store", driver: "store", wantType: datasources.StoreSimilarity{}},
		{name: "chromem", driver: "chromem", wantType: &chromem.Index{}},
		{name: "unknown", driver: "faiss", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SIMILARITY_DRIVER", tc.driver)

			repo, err := setupSimilarityRepository(testContext(), nil)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.wantType, repo)
		})
	}
}

func TestSetupEmbedder(t *testing.T) {
	cases := []struct {
		name     string
		env      map[string]string
		wantType any
		wantErr  bool
	}{
		{
			name:     "null",
			env:      map[string]string{"EMBEDDING_DRIVER": "null"},
			wantType: datasources.NullEmbedder{},
		},
		{
			name:     "voyageai",
			env:      map[string]string{"EMBEDDING_DRIVER": "voyageai", "VOYAGEAI_API_KEY": "key"},
			wantType: &voyageai.Client{},
		},
		{
			name:     "openai",
			env:      map[string]string{"EMBEDDING_DRIVER": "openai", "OPENAI_API_KEY": "key"},
			wantType: &openai.Client{},
		},
		{
			name:    "unknown",
			env:     map[string]string{"EMBEDDING_DRIVER": "word2vec"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			embedder, err := setupEmbedder(testContext(), DefaultUpsertSkillConfig())
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.wantType, embedder)
		})
	}
}

func TestSetupExplainer_WrapsWithRateLimit(t *testing.T) {
	t.Setenv("EXPLAINER_DRIVER", "openai")
	t.Setenv("OPENAI_API_KEY", "key")

	explainer, err := setupExplainer(testContext())
	require.NoError(t, err)
	assert.IsType(t, &datasources.RateLimitedExplainer{}, explainer)

	t.Setenv("EXPLAINER_DRIVER", "null")
	explainer, err = setupExplainer(testContext())
	require.NoError(t, err)
	assert.IsType(t, datasources.NullMatchExplainer{}, explainer)
}

func TestSetupCommands_AppliesMatchingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matching.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_score: 0.5\nexplain_concurrency: 2\n"), 0o600))
	t.Setenv("MATCHING_CONFIG_FILE", path)

	services := &Services{
		Similarity: datasources.NullSimilarityRepository{},
		Embedder:   datasources.NullEmbedder{},
		Explainer:  datasources.NullMatchExplainer{},
		Cache:      datasources.NullMatchCache{},
		Embedding:  DefaultUpsertSkillConfig(),
	}

	cmds, err := SetupCommands(testContext(), services)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cmds.FindMatches.Config.MinScore, 1e-9)
	assert.Equal(t, 2, cmds.DiscoverMatches.Config.ExplainConcurrency)
	assert.False(t, cmds.DiscoverMatches.Config.UseCache)
	assert.Equal(t, services.Embedding.Dimension, cmds.FindMatches.Config.EmbeddingDimension)
	assert.Equal(t, DefaultReembedSkillsConfig().BatchSize, cmds.ReembedSkills.Config.BatchSize)
}

func TestSetupCommands_InvalidMatchingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matching.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_score: 1.5\n"), 0o600))
	t.Setenv("MATCHING_CONFIG_FILE", path)

	_, err := SetupCommands(testContext(), &Services{Embedding: DefaultUpsertSkillConfig()})
	require.Error(t, err)
}
