package domain

// PairingCandidate is one (requester LEARN, candidate TEACH, candidate LEARN,
// requester TEACH) quadruple produced by reciprocity expansion.
type PairingCandidate struct {
	RequesterLearn Skill
	CandidateTeach Skill
	CandidateLearn Skill
	RequesterTeach Skill
}

// ScoredPairing is a pairing with its unrounded scores. User1 is always the requester.
type ScoredPairing struct {
	User1ID             string
	User2ID             string
	Skill1TeachID       string
	Skill2TeachID       string
	LearnSkillID        string
	TeacherLearnSkillID string
	Scores              ScoreBreakdown
}

// UserPair identifies an unordered pair of users.
type UserPair struct {
	Low, High string
}

// UserPairKey orders the two ids so {a, b} and {b, a} share a key.
func UserPairKey(a, b string) UserPair {
	if a > b {
		a, b = b, a
	}
	return UserPair{Low: a, High: b}
}

func (p ScoredPairing) PairKey() UserPair {
	return UserPairKey(p.User1ID, p.User2ID)
}

// Match is the reporting form of a ScoredPairing, with scores rounded to
// four decimal places.
type Match struct {
	User1ID                string  `json:"user1_id"`
	User2ID                string  `json:"user2_id"`
	Skill1TeachID          string  `json:"skill1_teach_id"`
	Skill2TeachID          string  `json:"skill2_teach_id"`
	LearnSkillID           string  `json:"learn_skill_id"`
	TeacherLearnSkillID    string  `json:"teacher_learn_skill_id"`
	SemanticScore          float64 `json:"semantic_score"`
	ReciprocityScore       float64 `json:"reciprocity_score"`
	AvailabilityScore      float64 `json:"availability_score"`
	PreferenceScore        float64 `json:"preference_score"`
	TotalScore             float64 `json:"total_score"`
	Explanation            string  `json:"explanation,omitempty"`
	ExplanationIsGenerated bool    `json:"explanation_is_generated,omitempty"`
}

func (p ScoredPairing) Match() Match {
	return Match{
		User1ID:             p.User1ID,
		User2ID:             p.User2ID,
		Skill1TeachID:       p.Skill1TeachID,
		Skill2TeachID:       p.Skill2TeachID,
		LearnSkillID:        p.LearnSkillID,
		TeacherLearnSkillID: p.TeacherLearnSkillID,
		SemanticScore:       Round4(p.Scores.Semantic),
		ReciprocityScore:    Round4(p.Scores.Reciprocity),
		AvailabilityScore:   Round4(p.Scores.Availability),
		PreferenceScore:     Round4(p.Scores.Preference),
		TotalScore:          Round4(p.Scores.Total),
	}
}

// MatchStats reports how much input was dropped while computing matches.
type MatchStats struct {
	RequesterLearnSkills    int  `json:"requester_learn_skills"`
	RequesterTeachSkills    int  `json:"requester_teach_skills"`
	CandidatesConsidered    int  `json:"candidates_considered"`
	PairingsScored          int  `json:"pairings_scored"`
	SkippedMissingEmbedding int  `json:"skipped_missing_embedding"`
	SkippedMalformed        int  `json:"skipped_malformed"`
	CandidatesWithoutUser   int  `json:"candidates_without_user"`
	SkippedBelowThreshold   int  `json:"skipped_below_threshold"`
	SkippedDuplicatePair    int  `json:"skipped_duplicate_pair"`
	Truncated               bool `json:"truncated"`
	Interrupted             bool `json:"interrupted"`
}

// MatchResult is a ranked set of matches along with how they were computed.
type MatchResult struct {
	Matches []Match    `json:"matches"`
	Stats   MatchStats `json:"stats"`
}
