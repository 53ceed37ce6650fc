package domain

import (
	"errors"
	"fmt"
	"strings"
)

// SkillMode is the direction of a skill listing.
type SkillMode string

const (
	SkillModeTeach SkillMode = "TEACH"
	SkillModeLearn SkillMode = "LEARN"
)

// Opposite returns the mode a skill must have to pair with one of mode m.
func (m SkillMode) Opposite() SkillMode {
	if m == SkillModeTeach {
		return SkillModeLearn
	}
	return SkillModeTeach
}

func (m SkillMode) Valid() bool {
	return m == SkillModeTeach || m == SkillModeLearn
}

const (
	MinSkillLevel = 1
	MaxSkillLevel = 5

	MaxSkillNameLength = 200
)

var ErrInvalidSkill = errors.New("invalid skill")

// AvailabilitySlot is a coarse (day, time-of-day) token. Two slots are equal
// when both parts match exactly.
type AvailabilitySlot struct {
	Day  string `json:"day" yaml:"day"`
	Time string `json:"time" yaml:"time"`
}

// Skill is a single TEACH or LEARN listing owned by a user.
type Skill struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	Mode           SkillMode          `json:"mode"`
	Name           string             `json:"name"`
	Level          int                `json:"level"`
	Availability   []AvailabilitySlot `json:"availability,omitempty"`
	CanonicalText  string             `json:"-"`
	Embedding      []float32          `json:"-"`
	EmbeddingModel string             `json:"-"`
}

// HasEmbedding reports whether the skill can take part in similarity search.
func (s Skill) HasEmbedding() bool {
	return len(s.Embedding) > 0
}

// HasValidLevel reports whether the level is within the 1..5 scale.
func (s Skill) HasValidLevel() bool {
	return s.Level >= MinSkillLevel && s.Level <= MaxSkillLevel
}

// Validate checks the user-supplied fields of a skill.
func (s Skill) Validate() error {
	if !s.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode [%s]", ErrInvalidSkill, s.Mode)
	}
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSkill)
	}
	if len(name) > MaxSkillNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidSkill, MaxSkillNameLength)
	}
	if !s.HasValidLevel() {
		return fmt.Errorf("%w: level [%d] outside %d..%d", ErrInvalidSkill, s.Level, MinSkillLevel, MaxSkillLevel)
	}
	for i, slot := range s.Availability {
		if strings.TrimSpace(slot.Day) == "" || strings.TrimSpace(slot.Time) == "" {
			return fmt.Errorf("%w: availability slot %d is incomplete", ErrInvalidSkill, i)
		}
	}
	return nil
}

// User is the subset of a participant's profile the matching engine reads.
type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PreferredLanguage string `json:"preferred_language"`
}

// SimilarSkill is a similarity hit returned by a vector index.
type SimilarSkill struct {
	SkillID string
	Score   float64
}
