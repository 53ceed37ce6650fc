package app

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/shamanshetty/TradeCraft/internal/transport/web/router"
	"github.com/shamanshetty/TradeCraft/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Commands are the operations exposed by every entry point.
type Commands struct {
	FindMatches     *command.FindMatches
	DiscoverMatches *command.DiscoverMatches
	UpsertSkill     *command.UpsertSkill
	DeleteSkill     *command.DeleteSkill
	ReembedSkills   *command.ReembedSkills
}

func Setup(ctx context.Context) ([]Component, *Services, error) {
	services, err := SetupServices(ctx)
	if err != nil {
		return nil, nil, err
	}

	cmds, err := SetupCommands(ctx, services)
	if err != nil {
		services.Close()
		return nil, nil, err
	}

	httpRouter, err := router.MakeRouter(
		cmds.DiscoverMatches,
		cmds.UpsertSkill,
		cmds.DeleteSkill,
		GetEnvAsDuration(ctx, "HTTP_MATCHES_CACHE_MAX_AGE", 0),
	)
	if err != nil {
		services.Close()
		return nil, nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   GetEnvAsInt(ctx, "PORT", 8080),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, services, nil
}

// SetupCommands builds the commands from the services, applying the optional
// matching config file named by MATCHING_CONFIG_FILE.
func SetupCommands(ctx context.Context, services *Services) (*Commands, error) {
	findConfig := DefaultFindMatchesConfig()
	discoverConfig := DefaultDiscoverMatchesConfig()

	if path := GetEnvAsString("MATCHING_CONFIG_FILE", ""); path != "" {
		fileConfig, err := LoadMatchingConfig(path)
		if err != nil {
			return nil, err
		}
		findConfig, discoverConfig, err = fileConfig.Apply(findConfig, discoverConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid matching config %s: %w", path, err)
		}
		domain.LoggerFromContext(ctx).InfoContext(ctx, "loaded matching config", "path", path)
	}

	findConfig.EmbeddingDimension = services.Embedding.Dimension

	if services.CacheEnabled {
		discoverConfig.UseCache = true
		discoverConfig.CacheNamespace = command.ConfigFingerprint(findConfig) + ";model=" + services.Embedding.Model
	}

	findMatchesCmd := command.NewFindMatches(
		services.Store,
		services.Similarity,
		services.Store,
		services.Store,
		findConfig,
	)

	reembedConfig := DefaultReembedSkillsConfig()
	reembedConfig.Embedding = services.Embedding
	reembedConfig.BatchSize = GetEnvAsInt(ctx, "REEMBED_BATCH_SIZE", reembedConfig.BatchSize)

	return &Commands{
		FindMatches: findMatchesCmd,
		DiscoverMatches: command.NewDiscoverMatches(
			findMatchesCmd,
			services.Store,
			services.Store,
			services.Store,
			services.Explainer,
			services.Cache,
			discoverConfig,
		),
		UpsertSkill: command.NewUpsertSkill(
			services.Store,
			services.Store,
			services.Embedder,
			services.Similarity,
			services.Embedding,
		),
		DeleteSkill: command.NewDeleteSkill(
			services.Store,
			services.Store,
			services.Similarity,
		),
		ReembedSkills: command.NewReembedSkills(
			services.Store,
			services.Store,
			services.Embedder,
			services.Similarity,
			reembedConfig,
		),
	}, nil
}
