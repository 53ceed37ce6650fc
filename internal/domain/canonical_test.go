package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeSkill(t *testing.T) {
	cases := []struct {
		name     string
		skill    Skill
		expected string
	}{
		{
			name:     "teach_without_availability",
			skill:    Skill{Mode: SkillModeTeach, Name: "Python", Level: 4},
			expected: "Teach Python at advanced level (4/5)",
		},
		{
			name:     "learn_with_availability",
			skill:    Skill{Mode: SkillModeLearn, Name: "Guitar", Level: 1, Availability: []AvailabilitySlot{{Day: "sat", Time: "morning"}}},
			expected: "Learn Guitar at beginner level (1/5); available for practical sessions",
		},
		{
			name:     "name_is_trimmed",
			skill:    Skill{Mode: SkillModeTeach, Name: "  Spanish ", Level: 5},
			expected: "Teach Spanish at expert level (5/5)",
		},
		{
			name:     "unknown_level_defaults_to_intermediate",
			skill:    Skill{Mode: SkillModeLearn, Name: "Chess", Level: 9},
			expected: "Learn Chess at intermediate level (3/5)",
		},
		{
			name:     "elementary",
			skill:    Skill{Mode: SkillModeLearn, Name: "Go", Level: 2},
			expected: "Learn Go at elementary level (2/5)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanonicalizeSkill(tc.skill))
		})
	}
}

func TestCanonicalizeSkill_ChangesWithEachInput(t *testing.T) {
	base := Skill{Mode: SkillModeTeach, Name: "Python", Level: 3}
	baseText := CanonicalizeSkill(base)

	variants := map[string]Skill{
		"mode":         {Mode: SkillModeLearn, Name: "Python", Level: 3},
		"name":         {Mode: SkillModeTeach, Name: "Rust", Level: 3},
		"level":        {Mode: SkillModeTeach, Name: "Python", Level: 4},
		"availability": {Mode: SkillModeTeach, Name: "Python", Level: 3, Availability: []AvailabilitySlot{{Day: "mon", Time: "am"}}},
	}
	for name, v := range variants {
		assert.NotEqual(t, baseText, CanonicalizeSkill(v), name)
	}

	// Which slots are listed does not matter, only whether any are.
	a := Skill{Mode: SkillModeTeach, Name: "Python", Level: 3, Availability: []AvailabilitySlot{{Day: "mon", Time: "am"}}}
	b := Skill{Mode: SkillModeTeach, Name: "Python", Level: 3, Availability: []AvailabilitySlot{{Day: "fri", Time: "pm"}}}
	assert.Equal(t, CanonicalizeSkill(a), CanonicalizeSkill(b))
}
