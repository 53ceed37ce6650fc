package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFindMatchesConfig returns the default config for match computation.
func DefaultFindMatchesConfig() command.FindMatchesConfig {
	return command.FindMatchesConfig{
		Weights:            domain.DefaultWeights(),
		CandidatesPerSkill: 20,
		MinScore:           0.3,
		DefaultLimit:       10,
		FetchConcurrency:   8,
		MaxPairings:        0,
	}
}

// DefaultDiscoverMatchesConfig returns the default config for serving matches.
func DefaultDiscoverMatchesConfig() command.DiscoverMatchesConfig {
	return command.DiscoverMatchesConfig{
		ExplainConcurrency: 4,
		UseCache:           false,
	}
}

// DefaultUpsertSkillConfig returns the default embedding config used when skills are stored.
func DefaultUpsertSkillConfig() command.EmbeddingConfig {
	return command.EmbeddingConfig{
		Model:     "voyage-3.5",
		Dimension: 1024,
	}
}

// DefaultReembedSkillsConfig returns the default config for the re-embedding backfill.
func DefaultReembedSkillsConfig() command.ReembedSkillsConfig {
	return command.ReembedSkillsConfig{
		Embedding: DefaultUpsertSkillConfig(),
		BatchSize: 500,
	}
}

// MatchingConfig is the optional YAML override file. Unset fields keep their defaults.
type MatchingConfig struct {
	Weights            *domain.Weights `yaml:"weights"`
	CandidatesPerSkill *int            `yaml:"candidates_per_skill"`
	MinScore           *float64        `yaml:"min_score"`
	DefaultLimit       *int            `yaml:"default_limit"`
	FetchConcurrency   *int            `yaml:"fetch_concurrency"`
	MaxPairings        *int            `yaml:"max_pairings"`
	ExplainConcurrency *int            `yaml:"explain_concurrency"`
}

// LoadMatchingConfig reads the override file at path. Unknown keys are rejected.
func LoadMatchingConfig(path string) (MatchingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchingConfig{}, fmt.Errorf("cannot read matching config %s: %w", path, err)
	}
	return ParseMatchingConfig(data)
}

func ParseMatchingConfig(data []byte) (MatchingConfig, error) {
	var cfg MatchingConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return MatchingConfig{}, fmt.Errorf("invalid matching config YAML: %w", err)
	}
	return cfg, nil
}

// Apply overlays the file's values onto the given configs and validates the result.
func (m MatchingConfig) Apply(
	find command.FindMatchesConfig,
	discover command.DiscoverMatchesConfig,
) (command.FindMatchesConfig, command.DiscoverMatchesConfig, error) {
	if m.Weights != nil {
		find.Weights = *m.Weights
	}
	if m.CandidatesPerSkill != nil {
		find.CandidatesPerSkill = *m.CandidatesPerSkill
	}
	if m.MinScore != nil {
		find.MinScore = *m.MinScore
	}
	if m.DefaultLimit != nil {
		find.DefaultLimit = *m.DefaultLimit
	}
	if m.FetchConcurrency != nil {
		find.FetchConcurrency = *m.FetchConcurrency
	}
	if m.MaxPairings != nil {
		find.MaxPairings = *m.MaxPairings
	}
	if m.ExplainConcurrency != nil {
		discover.ExplainConcurrency = *m.ExplainConcurrency
	}

	if err := ValidateFindMatchesConfig(find); err != nil {
		return find, discover, err
	}
	if discover.ExplainConcurrency < 1 {
		return find, discover, fmt.Errorf("explain_concurrency must be at least 1, got %d", discover.ExplainConcurrency)
	}
	return find, discover, nil
}

func ValidateFindMatchesConfig(config command.FindMatchesConfig) error {
	if err := config.Weights.Validate(); err != nil {
		return err
	}
	if config.CandidatesPerSkill < 1 {
		return fmt.Errorf("candidates_per_skill must be at least 1, got %d", config.CandidatesPerSkill)
	}
	if config.MinScore < 0 || config.MinScore >= 1 {
		return fmt.Errorf("min_score must be in [0, 1), got %g", config.MinScore)
	}
	if config.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be at least 1, got %d", config.DefaultLimit)
	}
	if config.FetchConcurrency < 1 {
		return fmt.Errorf("fetch_concurrency must be at least 1, got %d", config.FetchConcurrency)
	}
	if config.MaxPairings < 0 {
		return fmt.Errorf("max_pairings must not be negative, got %d", config.MaxPairings)
	}
	return nil
}
