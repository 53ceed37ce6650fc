package domain

import (
	"cmp"
	"slices"
)

// RankOutcome counts what RankAndDeduplicate dropped.
type RankOutcome struct {
	BelowThreshold int
	DuplicatePairs int
	Truncated      bool
}

// RankAndDeduplicate keeps pairings whose total exceeds minScore, orders them
// best first, keeps the first pairing for each unordered user pair and
// truncates to limit. A non-positive limit means no truncation. The input
// slice is not modified.
//
// Ordering compares totals rounded to four decimal places, so reported order
// always agrees with reported scores. Ties are broken by user2 id, then the
// skill ids, all ascending.
func RankAndDeduplicate(pairings []ScoredPairing, minScore float64, limit int) ([]ScoredPairing, RankOutcome) {
	var outcome RankOutcome

	kept := make([]ScoredPairing, 0, len(pairings))
	for _, p := range pairings {
		if p.Scores.Total <= minScore {
			outcome.BelowThreshold++
			continue
		}
		kept = append(kept, p)
	}

	slices.SortStableFunc(kept, comparePairings)

	seen := make(map[UserPair]struct{}, len(kept))
	unique := make([]ScoredPairing, 0, len(kept))
	for _, p := range kept {
		key := p.PairKey()
		if _, ok := seen[key]; ok {
			outcome.DuplicatePairs++
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
		outcome.Truncated = true
	}

	return unique, outcome
}

func comparePairings(a, b ScoredPairing) int {
	if c := cmp.Compare(Round4(b.Scores.Total), Round4(a.Scores.Total)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.User2ID, b.User2ID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Skill2TeachID, b.Skill2TeachID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.LearnSkillID, b.LearnSkillID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Skill1TeachID, b.Skill1TeachID); c != 0 {
		return c
	}
	return cmp.Compare(a.TeacherLearnSkillID, b.TeacherLearnSkillID)
}
