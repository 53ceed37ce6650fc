package command

import (
	"context"
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"golang.org/x/sync/errgroup"
)

// FindMatchesRequest is the request for the FindMatches command.
type FindMatchesRequest struct {
	UserID string
	// Limit caps the number of matches returned. Zero uses the configured default.
	Limit int
}

// FindMatchesResponse holds ranked pairings, best first, and what was skipped on the way.
type FindMatchesResponse struct {
	Pairings []domain.ScoredPairing
	Stats    domain.MatchStats
}

// FindMatchesConfig holds configuration for the matching pipeline.
type FindMatchesConfig struct {
	Weights domain.Weights

	// CandidatesPerSkill is how many similar TEACH skills to retrieve per
	// requester LEARN skill.
	CandidatesPerSkill int

	// MinScore is the exclusive lower bound on a pairing's total score.
	MinScore float64

	// DefaultLimit is used when a request does not set one.
	DefaultLimit int

	// FetchConcurrency bounds concurrent store and index lookups per request.
	FetchConcurrency int

	// MaxPairings stops reciprocity expansion after this many pairings.
	// Zero means no cap.
	MaxPairings int

	// EmbeddingDimension is the length of embeddings from the current model.
	// Skills with any other length are left over from an older model and are
	// skipped. Zero takes the dimension from the first usable skill.
	EmbeddingDimension int
}

// FindMatches runs candidate generation, reciprocity expansion, scoring and
// ranking for one requester.
type FindMatches struct {
	SkillsLister datasources.UserSkillsLister
	Similarity   datasources.SimilarSkillsLister
	SkillFetcher datasources.SkillFetcher
	UserGetter   datasources.UserGetter
	Config       FindMatchesConfig

	// checkInterval overrides defaultScoreCheckInterval in tests.
	checkInterval int
}

var _ Command[FindMatchesRequest, FindMatchesResponse] = (*FindMatches)(nil)

// NewFindMatches creates a properly initialized FindMatches command.
func NewFindMatches(
	skillsLister datasources.UserSkillsLister,
	similarity datasources.SimilarSkillsLister,
	skillFetcher datasources.SkillFetcher,
	userGetter datasources.UserGetter,
	config FindMatchesConfig,
) *FindMatches {
	return &FindMatches{
		SkillsLister: skillsLister,
		Similarity:   similarity,
		SkillFetcher: skillFetcher,
		UserGetter:   userGetter,
		Config:       config,
	}
}

// defaultScoreCheckInterval is how many pairings are scored between cancellation checks.
const defaultScoreCheckInterval = 256

// Execute finds the best reciprocal skill exchanges for req.UserID.
//
// If ctx is cancelled part way through, the pairings collected so far are
// ranked and returned with Stats.Interrupted set, rather than an error.
func (c *FindMatches) Execute(ctx context.Context, req FindMatchesRequest) (FindMatchesResponse, error) {
	logger := domain.LoggerFromContext(ctx).With("user_id", req.UserID)
	ctx = domain.ContextWithLogger(ctx, logger)

	var resp FindMatchesResponse

	limit := req.Limit
	if limit <= 0 {
		limit = c.Config.DefaultLimit
	}

	skills, err := c.SkillsLister.ListUserSkills(ctx, req.UserID, "")
	if err != nil {
		if ctx.Err() != nil {
			resp.Stats.Interrupted = true
			return resp, nil
		}
		return resp, fmt.Errorf("%w: listing requester skills: %w", domain.ErrUpstreamFailure, err)
	}

	filter := &skillFilter{dimension: c.Config.EmbeddingDimension, stats: &resp.Stats}
	var requesterLearn, requesterTeach []domain.Skill
	for _, s := range skills {
		if !filter.usable(ctx, s) {
			continue
		}
		switch s.Mode {
		case domain.SkillModeLearn:
			requesterLearn = append(requesterLearn, s)
		case domain.SkillModeTeach:
			requesterTeach = append(requesterTeach, s)
		}
	}
	resp.Stats.RequesterLearnSkills = len(requesterLearn)
	resp.Stats.RequesterTeachSkills = len(requesterTeach)

	if len(requesterLearn) == 0 || len(requesterTeach) == 0 {
		logger.DebugContext(ctx, "requester cannot form reciprocal pairings",
			"learn_skills", len(requesterLearn), "teach_skills", len(requesterTeach))
		return resp, nil
	}

	requester, err := c.UserGetter.GetUser(ctx, req.UserID)
	if err != nil {
		if ctx.Err() != nil {
			resp.Stats.Interrupted = true
			return resp, nil
		}
		return resp, fmt.Errorf("%w: getting requester: %w", domain.ErrUpstreamFailure, err)
	}
	if requester == nil {
		logger.DebugContext(ctx, "requester user not found")
		return resp, nil
	}

	hits, err := c.findCandidateTeachSkills(ctx, req.UserID, requesterLearn, filter)
	if err != nil {
		return resp, err
	}

	candidateIDs := uniqueCandidateUserIDs(hits)
	resp.Stats.CandidatesConsidered = len(candidateIDs)

	var candidateLearn map[string][]domain.Skill
	var candidateUsers map[string]*domain.User
	if !resp.Stats.Interrupted {
		candidateLearn, candidateUsers, err = c.fetchCandidates(ctx, candidateIDs, filter)
		if err != nil {
			return resp, err
		}
	}

	gen := &PairingGenerator{
		RequesterLearn: requesterLearn,
		RequesterTeach: requesterTeach,
		Hits:           hits,
		CandidateLearn: candidateLearn,
	}

	var pairings []domain.ScoredPairing
	for p := range gen.All() {
		if c.Config.MaxPairings > 0 && len(pairings) >= c.Config.MaxPairings {
			logger.DebugContext(ctx, "pairing cap reached", "max_pairings", c.Config.MaxPairings)
			break
		}
		if len(pairings) > 0 && len(pairings)%c.scoreCheckInterval() == 0 && ctx.Err() != nil {
			resp.Stats.Interrupted = true
			break
		}

		scores := domain.Score(
			p.RequesterLearn, p.CandidateTeach, p.CandidateLearn, p.RequesterTeach,
			requester, candidateUsers[p.CandidateTeach.UserID],
			c.Config.Weights,
		)
		pairings = append(pairings, domain.ScoredPairing{
			User1ID:             req.UserID,
			User2ID:             p.CandidateTeach.UserID,
			Skill1TeachID:       p.RequesterTeach.ID,
			Skill2TeachID:       p.CandidateTeach.ID,
			LearnSkillID:        p.RequesterLearn.ID,
			TeacherLearnSkillID: p.CandidateLearn.ID,
			Scores:              scores,
		})
	}
	resp.Stats.PairingsScored = len(pairings)

	ranked, outcome := domain.RankAndDeduplicate(pairings, c.Config.MinScore, limit)
	resp.Pairings = ranked
	resp.Stats.SkippedBelowThreshold = outcome.BelowThreshold
	resp.Stats.SkippedDuplicatePair = outcome.DuplicatePairs
	resp.Stats.Truncated = outcome.Truncated

	if resp.Stats.Interrupted {
		logger.WarnContext(ctx, "match computation interrupted, returning partial results",
			"pairings_scored", resp.Stats.PairingsScored, "error", ctx.Err())
	}
	logger.DebugContext(ctx, "computed matches",
		"candidates", resp.Stats.CandidatesConsidered,
		"pairings_scored", resp.Stats.PairingsScored,
		"matches", len(ranked),
	)

	return resp, nil
}

// findCandidateTeachSkills queries the similarity index once per requester
// LEARN skill. The result is indexed like learnSkills. On cancellation it
// marks the stats interrupted and returns whatever lookups completed.
func (c *FindMatches) findCandidateTeachSkills(
	ctx context.Context,
	requesterID string,
	learnSkills []domain.Skill,
	filter *skillFilter,
) ([][]domain.Skill, error) {
	fetched := make([][]domain.Skill, len(learnSkills))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(c.fetchConcurrency())
	for i, learn := range learnSkills {
		grp.Go(func() error {
			similar, err := c.Similarity.ListSimilarSkills(
				grpCtx, learn.Embedding, domain.SkillModeTeach, c.Config.CandidatesPerSkill, requesterID,
			)
			if err != nil {
				return fmt.Errorf("listing skills similar to [%s]: %w", learn.ID, err)
			}
			if len(similar) == 0 {
				return nil
			}

			ids := make([]string, 0, len(similar))
			for _, s := range similar {
				ids = append(ids, s.SkillID)
			}
			skills, err := c.SkillFetcher.FetchSkillsByID(grpCtx, ids)
			if err != nil {
				return fmt.Errorf("fetching candidate skills for [%s]: %w", learn.ID, err)
			}
			fetched[i] = skills
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		if ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
		}
		filter.stats.Interrupted = true
	}

	// Filtering runs after Wait so the shared stats are only touched here.
	hits := make([][]domain.Skill, len(learnSkills))
	for i, skills := range fetched {
		for _, s := range skills {
			if s.Mode != domain.SkillModeTeach || s.UserID == requesterID {
				continue
			}
			if !filter.usable(ctx, s) {
				continue
			}
			hits[i] = append(hits[i], s)
		}
	}
	return hits, nil
}

type candidateData struct {
	learn   []domain.Skill
	user    *domain.User
	fetched bool
}

// fetchCandidates loads the LEARN skills and user record of every candidate.
// A candidate without a user record is kept with a nil user, which scores a
// neutral preference. Candidates whose lookups did not finish before
// cancellation are left out of the returned maps.
func (c *FindMatches) fetchCandidates(
	ctx context.Context,
	candidateIDs []string,
	filter *skillFilter,
) (map[string][]domain.Skill, map[string]*domain.User, error) {
	logger := domain.LoggerFromContext(ctx)
	data := make([]candidateData, len(candidateIDs))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(c.fetchConcurrency())
	for i, id := range candidateIDs {
		grp.Go(func() error {
			user, err := c.UserGetter.GetUser(grpCtx, id)
			if err != nil {
				return fmt.Errorf("getting candidate user [%s]: %w", id, err)
			}
			learn, err := c.SkillsLister.ListUserSkills(grpCtx, id, domain.SkillModeLearn)
			if err != nil {
				return fmt.Errorf("listing learn skills of candidate [%s]: %w", id, err)
			}
			data[i] = candidateData{learn: learn, user: user, fetched: true}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		if ctx.Err() == nil {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
		}
		filter.stats.Interrupted = true
	}

	learnByUser := make(map[string][]domain.Skill, len(candidateIDs))
	users := make(map[string]*domain.User, len(candidateIDs))
	for i, id := range candidateIDs {
		d := data[i]
		if !d.fetched {
			continue
		}
		if d.user == nil {
			logger.DebugContext(ctx, "candidate has no user record", "candidate_id", id)
			filter.stats.CandidatesWithoutUser++
		}

		var usable []domain.Skill
		for _, s := range d.learn {
			if s.Mode != domain.SkillModeLearn || !filter.usable(ctx, s) {
				continue
			}
			usable = append(usable, s)
		}
		learnByUser[id] = usable
		users[id] = d.user
	}
	return learnByUser, users, nil
}

func (c *FindMatches) scoreCheckInterval() int {
	if c.checkInterval > 0 {
		return c.checkInterval
	}
	return defaultScoreCheckInterval
}

func (c *FindMatches) fetchConcurrency() int {
	if c.Config.FetchConcurrency <= 0 {
		return 1
	}
	return c.Config.FetchConcurrency
}

func uniqueCandidateUserIDs(hits [][]domain.Skill) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, skills := range hits {
		for _, s := range skills {
			if _, ok := seen[s.UserID]; ok {
				continue
			}
			seen[s.UserID] = struct{}{}
			ids = append(ids, s.UserID)
		}
	}
	return ids
}

// skillFilter drops skills that cannot be scored. When no dimension is
// configured, the first usable embedding fixes the one every later skill must share.
type skillFilter struct {
	dimension int
	stats     *domain.MatchStats
}

func (f *skillFilter) usable(ctx context.Context, s domain.Skill) bool {
	logger := domain.LoggerFromContext(ctx)

	if !s.HasEmbedding() {
		logger.DebugContext(ctx, "skipping skill without embedding", "skill_id", s.ID)
		f.stats.SkippedMissingEmbedding++
		return false
	}
	if !s.HasValidLevel() {
		logger.DebugContext(ctx, "skipping skill with invalid level", "skill_id", s.ID, "level", s.Level)
		f.stats.SkippedMalformed++
		return false
	}
	if f.dimension == 0 {
		f.dimension = len(s.Embedding)
	}
	if len(s.Embedding) != f.dimension {
		logger.WarnContext(ctx, "skipping skill with mismatched embedding dimension",
			"skill_id", s.ID, "dimension", len(s.Embedding), "expected_dimension", f.dimension)
		f.stats.SkippedMalformed++
		return false
	}
	return true
}
