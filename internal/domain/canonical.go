package domain

import (
	"fmt"
	"strings"
)

var levelDescriptors = map[int]string{
	1: "beginner",
	2: "elementary",
	3: "intermediate",
	4: "advanced",
	5: "expert",
}

const defaultLevel = 3

// CanonicalizeSkill renders the text that is embedded for a skill. Changing
// any part of it (mode, name, level, availability presence) must trigger a
// re-embed, so callers compare it against Skill.CanonicalText.
func CanonicalizeSkill(s Skill) string {
	level := s.Level
	descriptor, ok := levelDescriptors[level]
	if !ok {
		level = defaultLevel
		descriptor = levelDescriptors[defaultLevel]
	}

	var b strings.Builder
	b.WriteString(modeLabel(s.Mode))
	b.WriteString(" ")
	b.WriteString(strings.TrimSpace(s.Name))
	fmt.Fprintf(&b, " at %s level (%d/5)", descriptor, level)
	if len(s.Availability) > 0 {
		b.WriteString("; available for practical sessions")
	}
	return b.String()
}

func modeLabel(m SkillMode) string {
	lower := strings.ToLower(string(m))
	if lower == "" {
		return ""
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
