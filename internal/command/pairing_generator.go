package command

import (
	"iter"

	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// PairingGenerator enumerates every (requester LEARN, candidate TEACH,
// candidate LEARN, requester TEACH) quadruple reachable from the similarity
// hits. Enumeration is lazy so callers can stop early.
type PairingGenerator struct {
	RequesterLearn []domain.Skill
	RequesterTeach []domain.Skill
	// Hits[i] holds the candidate TEACH skills found for RequesterLearn[i].
	Hits [][]domain.Skill
	// CandidateLearn holds the usable LEARN skills of each candidate user.
	// Candidates missing from the map are skipped.
	CandidateLearn map[string][]domain.Skill
}

// All yields quadruples ordered by requester LEARN skill, then similarity
// rank, then candidate LEARN skill, then requester TEACH skill.
func (g *PairingGenerator) All() iter.Seq[domain.PairingCandidate] {
	return func(yield func(domain.PairingCandidate) bool) {
		for i, learn := range g.RequesterLearn {
			if i >= len(g.Hits) {
				return
			}
			for _, hit := range g.Hits[i] {
				candidateLearn, ok := g.CandidateLearn[hit.UserID]
				if !ok {
					continue
				}
				for _, cl := range candidateLearn {
					for _, rt := range g.RequesterTeach {
						if !yield(domain.PairingCandidate{
							RequesterLearn: learn,
							CandidateTeach: hit,
							CandidateLearn: cl,
							RequesterTeach: rt,
						}) {
							return
						}
					}
				}
			}
		}
	}
}
