package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkill_Validate(t *testing.T) {
	valid := Skill{Mode: SkillModeTeach, Name: "Python", Level: 3}

	cases := []struct {
		name    string
		mutate  func(s *Skill)
		wantErr string
	}{
		{name: "valid", mutate: func(*Skill) {}},
		{name: "unknown_mode", mutate: func(s *Skill) { s.Mode = "MENTOR" }, wantErr: "unknown mode"},
		{name: "blank_name", mutate: func(s *Skill) { s.Name = "   " }, wantErr: "name is empty"},
		{name: "long_name", mutate: func(s *Skill) { s.Name = strings.Repeat("x", 201) }, wantErr: "longer than"},
		{name: "level_zero", mutate: func(s *Skill) { s.Level = 0 }, wantErr: "outside"},
		{name: "level_six", mutate: func(s *Skill) { s.Level = 6 }, wantErr: "outside"},
		{
			name:    "incomplete_slot",
			mutate:  func(s *Skill) { s.Availability = []AvailabilitySlot{{Day: "mon"}} },
			wantErr: "availability slot 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidSkill)
				assert.Contains(t, err.Error(), tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSkillMode_Opposite(t *testing.T) {
	assert.Equal(t, SkillModeLearn, SkillModeTeach.Opposite())
	assert.Equal(t, SkillModeTeach, SkillModeLearn.Opposite())
}

func TestFallbackExplanation(t *testing.T) {
	got := FallbackExplanation(ExplanationRequest{
		CandidateName:    "Maria",
		CandidateTeaches: "Spanish",
		RequesterTeaches: "Python",
	})
	assert.Equal(t,
		"Maria teaches Spanish which matches what you want to learn. "+
			"You teach Python which they want to learn. This creates a balanced skill exchange.",
		got,
	)
}

func TestTruncateExplanation(t *testing.T) {
	short := "A fine match."
	assert.Equal(t, short, TruncateExplanation(short))

	long := strings.Repeat("é", MaxExplanationLength+20)
	got := TruncateExplanation(long)
	assert.Equal(t, MaxExplanationLength, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestExplanationPrompt(t *testing.T) {
	got := ExplanationPrompt(ExplanationRequest{
		Match:             Match{SemanticScore: 0.91234, ReciprocityScore: 0.75, AvailabilityScore: 0.5},
		RequesterName:     "Alex",
		CandidateName:     "Maria",
		RequesterTeaches:  "Python",
		RequesterLearns:   "Spanish",
		CandidateTeaches:  "Spanish",
		CandidateLearns:   "Python",
		CandidateLanguage: "es",
	})

	assert.Contains(t, got, "User 1 (Alex):\n- Teaches: Python\n- Wants to learn: Spanish\n")
	assert.Contains(t, got, "User 2 (Maria):\n- Teaches: Spanish\n- Wants to learn: Python\n- Preferred language: es\n")
	assert.Contains(t, got, "- Semantic similarity: 0.91\n")
	assert.Contains(t, got, "Keep it under 1000 characters.")
	assert.NotContains(t, got, "User 1 (Alex):\n- Teaches: Python\n- Wants to learn: Spanish\n- Preferred language")
}
