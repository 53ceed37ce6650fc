package domain

import (
	"fmt"
	"math"
)

// Weights controls how the four sub-scores combine into a pairing's total.
type Weights struct {
	Semantic     float64 `yaml:"semantic"`
	Reciprocity  float64 `yaml:"reciprocity"`
	Availability float64 `yaml:"availability"`
	Preference   float64 `yaml:"preference"`
}

const weightsSumTolerance = 1e-6

// DefaultWeights returns the weights used when no override is configured.
func DefaultWeights() Weights {
	return Weights{
		Semantic:     0.50,
		Reciprocity:  0.25,
		Availability: 0.15,
		Preference:   0.10,
	}
}

// Validate requires non-negative weights summing to 1.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"semantic":     w.Semantic,
		"reciprocity":  w.Reciprocity,
		"availability": w.Availability,
		"preference":   w.Preference,
	} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("weight [%s] must be non-negative, got %v", name, v)
		}
	}
	sum := w.Semantic + w.Reciprocity + w.Availability + w.Preference
	if math.Abs(sum-1) > weightsSumTolerance {
		return fmt.Errorf("weights must sum to 1, got %v", sum)
	}
	return nil
}

// ScoreBreakdown holds the unrounded sub-scores of a pairing, each in [0, 1].
type ScoreBreakdown struct {
	Semantic     float64
	Reciprocity  float64
	Availability float64
	Preference   float64
	Total        float64
}

// Score computes all sub-scores for the four skills of a pairing. Users may be
// nil when their record is unknown.
func Score(
	requesterLearn, candidateTeach, candidateLearn, requesterTeach Skill,
	requester, candidate *User,
	weights Weights,
) ScoreBreakdown {
	b := ScoreBreakdown{
		Semantic:     SemanticScore(requesterLearn, candidateTeach, candidateLearn, requesterTeach),
		Reciprocity:  ReciprocityScore(requesterTeach.Level, candidateLearn.Level, candidateTeach.Level, requesterLearn.Level),
		Availability: AvailabilityScore(requesterTeach.Availability, candidateTeach.Availability),
		Preference:   PreferenceScore(requester, candidate),
	}
	b.Total = weights.Semantic*b.Semantic +
		weights.Reciprocity*b.Reciprocity +
		weights.Availability*b.Availability +
		weights.Preference*b.Preference
	b.Total = clamp01(b.Total)
	return b
}

// SemanticScore averages how well the candidate's teaching fits the requester's
// learning and vice versa.
func SemanticScore(requesterLearn, candidateTeach, candidateLearn, requesterTeach Skill) float64 {
	forward := CosineSimilarity(requesterLearn.Embedding, candidateTeach.Embedding)
	backward := CosineSimilarity(candidateLearn.Embedding, requesterTeach.Embedding)
	return (forward + backward) / 2
}

// ReciprocityScore rates both teaching directions. Teaching is best when the
// teacher is one or two levels ahead of the learner.
func ReciprocityScore(teach1, learn2, teach2, learn1 int) float64 {
	return (levelGapScore(teach1, learn2) + levelGapScore(teach2, learn1)) / 2
}

func levelGapScore(teach, learn int) float64 {
	gap := float64(teach - learn)
	if gap >= 1 && gap <= 2 {
		return 1
	}
	return math.Max(0, 1-math.Abs(gap-1.5)/3)
}

// AvailabilityScore is the Jaccard index of two slot sets. An empty side is
// treated as unknown and scores a neutral 0.5.
func AvailabilityScore(a, b []AvailabilitySlot) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.5
	}

	setA := make(map[AvailabilitySlot]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[AvailabilitySlot]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	var intersection int
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// PreferenceScore compares preferred languages. A missing user record scores 0.5.
func PreferenceScore(u1, u2 *User) float64 {
	if u1 == nil || u2 == nil {
		return 0.5
	}
	if u1.PreferredLanguage == u2.PreferredLanguage {
		return 1
	}
	return 0.3
}

// Round4 rounds to four decimal places for reporting.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
