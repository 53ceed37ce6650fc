package app

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/datasources/anthropic"
	"github.com/shamanshetty/TradeCraft/internal/datasources/chromem"
	"github.com/shamanshetty/TradeCraft/internal/datasources/mysql"
	"github.com/shamanshetty/TradeCraft/internal/datasources/openai"
	"github.com/shamanshetty/TradeCraft/internal/datasources/pinecone"
	"github.com/shamanshetty/TradeCraft/internal/datasources/postgres"
	"github.com/shamanshetty/TradeCraft/internal/datasources/redis"
	"github.com/shamanshetty/TradeCraft/internal/datasources/voyageai"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// skillStore is a skill repository that can also answer similarity queries itself.
type skillStore interface {
	datasources.SkillRepository
	datasources.SimilarSkillsLister
}

// Services holds the datasources selected by the *_DRIVER environment variables.
type Services struct {
	Store        datasources.SkillRepository
	Similarity   datasources.SimilarityRepository
	Embedder     datasources.Embedder
	Explainer    datasources.MatchExplainer
	Cache        datasources.MatchCache
	CacheEnabled bool
	Embedding    command.EmbeddingConfig

	// Migrate applies the schema of the selected store.
	Migrate func(ctx context.Context) error

	closers []func()
}

// Close releases connections held by the services.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func SetupServices(ctx context.Context) (*Services, error) {
	s := &Services{}

	s.Embedding = embeddingConfigForDriver(MustGetEnvAsString(ctx, "EMBEDDING_DRIVER"))
	s.Embedding.Model = GetEnvAsString("EMBEDDING_MODEL", s.Embedding.Model)
	s.Embedding.Dimension = GetEnvAsInt(ctx, "EMBEDDING_DIMENSION", s.Embedding.Dimension)

	store, err := s.setupStore(ctx)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("setting up skill store: %w", err)
	}
	s.Store = store

	if s.Similarity, err = setupSimilarityRepository(ctx, store); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	if s.Embedder, err = setupEmbedder(ctx, s.Embedding); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	if s.Explainer, err = setupExplainer(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting up explainer: %w", err)
	}

	if err := s.setupMatchCache(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting up match cache: %w", err)
	}

	return s, nil
}

// embeddingConfigForDriver returns the default model for the embedding driver.
// Stored skills record the model, so changing it marks them for re-embedding.
func embeddingConfigForDriver(driver string) command.EmbeddingConfig {
	config := DefaultUpsertSkillConfig()
	if driver == "openai" {
		config.Model = openai.DefaultEmbeddingModel
	}
	return config
}

func (s *Services) setupStore(ctx context.Context) (skillStore, error) {
	switch driver := MustGetEnvAsString(ctx, "STORE_DRIVER"); driver {
	case "mysql":
		config := mysql.DefaultConnectConfig()
		config.MaxOpenConns = GetEnvAsInt(ctx, "MYSQL_MAX_OPEN_CONNS", config.MaxOpenConns)
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"), config)
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		s.closers = append(s.closers, func() { _ = db.Close() })
		s.Migrate = func(ctx context.Context) error { return mysql.Migrate(ctx, db) }
		return mysql.New(db), nil
	case "postgres":
		pool, err := postgres.Connect(ctx, MustGetEnvAsString(ctx, "POSTGRES_URI"), postgres.DefaultConnectConfig())
		if err != nil {
			return nil, fmt.Errorf("connecting to Postgres: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		s.Migrate = func(ctx context.Context) error { return postgres.Migrate(ctx, pool) }
		return postgres.New(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver [%s]", driver)
	}
}

func setupSimilarityRepository(ctx context.Context, store skillStore) (datasources.SimilarityRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "store":
		return datasources.StoreSimilarity{SimilarSkillsLister: store}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
			GetEnvAsString("PINECONE_NAMESPACE", "skills"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	case "chromem":
		index, err := chromem.NewIndex(chromem.Config{
			PersistDir: GetEnvAsString("CHROMEM_PERSIST_DIR", ""),
			Compress:   GetEnvAsString("CHROMEM_COMPRESS", "false") == "true",
		})
		if err != nil {
			return nil, fmt.Errorf("opening chromem index: %w", err)
		}
		domain.LoggerFromContext(ctx).InfoContext(ctx, "opened chromem index", "vector_count", index.Count())
		return index, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupEmbedder(ctx context.Context, embedding command.EmbeddingConfig) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDING_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "voyageai":
		return voyageai.NewClient(voyageai.Config{
			APIKey:          MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			Model:           embedding.Model,
			OutputDimension: embedding.Dimension,
			Timeout:         GetEnvAsDuration(ctx, "VOYAGEAI_TIMEOUT", 0),
		}), nil
	case "openai":
		return openai.NewClient(openai.Config{
			APIKey:              MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			BaseURL:             GetEnvAsString("OPENAI_BASE_URL", ""),
			EmbeddingModel:      embedding.Model,
			EmbeddingDimensions: embedding.Dimension,
		})
	default:
		return nil, fmt.Errorf("unknown embedding driver [%s]", driver)
	}
}

func setupExplainer(ctx context.Context) (datasources.MatchExplainer, error) {
	var explainer datasources.MatchExplainer
	switch driver := MustGetEnvAsString(ctx, "EXPLAINER_DRIVER"); driver {
	case "null":
		return datasources.NullMatchExplainer{}, nil
	case "openai":
		client, err := openai.NewClient(openai.Config{
			APIKey:    MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			BaseURL:   GetEnvAsString("OPENAI_BASE_URL", ""),
			ChatModel: GetEnvAsString("OPENAI_CHAT_MODEL", ""),
		})
		if err != nil {
			return nil, fmt.Errorf("creating OpenAI explainer: %w", err)
		}
		explainer = client
	case "anthropic":
		client, err := anthropic.NewExplainer(
			MustGetEnvAsString(ctx, "ANTHROPIC_API_KEY"),
			GetEnvAsString("ANTHROPIC_MODEL", ""),
		)
		if err != nil {
			return nil, fmt.Errorf("creating Anthropic explainer: %w", err)
		}
		explainer = client
	default:
		return nil, fmt.Errorf("unknown explainer driver [%s]", driver)
	}

	return datasources.NewRateLimitedExplainer(
		explainer,
		GetEnvAsInt(ctx, "EXPLAINER_REQUESTS_PER_MINUTE", 60),
		GetEnvAsInt(ctx, "EXPLAINER_BURST", 5),
	), nil
}

func (s *Services) setupMatchCache(ctx context.Context) error {
	switch driver := GetEnvAsString("MATCH_CACHE_DRIVER", "null"); driver {
	case "null":
		s.Cache = datasources.NullMatchCache{}
		return nil
	case "redis":
		config := redis.DefaultConfig()
		config.Addr = GetEnvAsString("REDIS_ADDR", config.Addr)
		config.Password = GetEnvAsString("REDIS_PASSWORD", "")
		config.DB = GetEnvAsInt(ctx, "REDIS_DB", config.DB)
		config.TTL = GetEnvAsDuration(ctx, "MATCH_CACHE_TTL", config.TTL)

		cache := redis.NewMatchCache(ctx, config, domain.LoggerFromContext(ctx))
		s.closers = append(s.closers, func() { _ = cache.Close() })
		s.Cache = cache
		s.CacheEnabled = cache.Available()
		return nil
	default:
		return fmt.Errorf("unknown match cache driver [%s]", driver)
	}
}
