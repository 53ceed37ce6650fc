package command

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DiscoverMatchesRequest is the request for the DiscoverMatches command.
type DiscoverMatchesRequest struct {
	UserID  string
	Limit   int
	Explain bool
}

// DiscoverMatchesConfig holds configuration for serving matches.
type DiscoverMatchesConfig struct {
	// ExplainConcurrency bounds concurrent explanation requests.
	ExplainConcurrency int

	// UseCache enables the match cache. Computing the cache key costs one
	// extra read of the requester's skills.
	UseCache bool

	// CacheNamespace is mixed into cache keys so that results computed
	// under different matching settings never collide.
	CacheNamespace string
}

// DiscoverMatches serves ranked matches for a user, with explanations.
type DiscoverMatches struct {
	FindMatches  Command[FindMatchesRequest, FindMatchesResponse]
	SkillsLister datasources.UserSkillsLister
	SkillFetcher datasources.SkillFetcher
	UserGetter   datasources.UserGetter
	Explainer    datasources.MatchExplainer
	Cache        datasources.MatchCache
	Config       DiscoverMatchesConfig
}

var _ Command[DiscoverMatchesRequest, domain.MatchResult] = (*DiscoverMatches)(nil)

// NewDiscoverMatches creates a properly initialized DiscoverMatches command.
func NewDiscoverMatches(
	findMatches Command[FindMatchesRequest, FindMatchesResponse],
	skillsLister datasources.UserSkillsLister,
	skillFetcher datasources.SkillFetcher,
	userGetter datasources.UserGetter,
	explainer datasources.MatchExplainer,
	cache datasources.MatchCache,
	config DiscoverMatchesConfig,
) *DiscoverMatches {
	return &DiscoverMatches{
		FindMatches:  findMatches,
		SkillsLister: skillsLister,
		SkillFetcher: skillFetcher,
		UserGetter:   userGetter,
		Explainer:    explainer,
		Cache:        cache,
		Config:       config,
	}
}

// Execute finds matches and, when requested, attaches an explanation to each.
// Explanation failures fall back to a fixed template and never fail the request.
func (c *DiscoverMatches) Execute(ctx context.Context, req DiscoverMatchesRequest) (domain.MatchResult, error) {
	logger := domain.LoggerFromContext(ctx)

	cacheKey := c.cacheKey(ctx, req)
	if cacheKey != "" {
		cached, err := c.Cache.GetMatches(ctx, cacheKey)
		if err != nil {
			logger.WarnContext(ctx, "failed to read match cache", "error", err)
		} else if cached != nil {
			logger.DebugContext(ctx, "serving matches from cache", "user_id", req.UserID)
			return *cached, nil
		}
	}

	found, err := c.FindMatches.Execute(ctx, FindMatchesRequest{UserID: req.UserID, Limit: req.Limit})
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("finding matches: %w", err)
	}

	result := domain.MatchResult{
		Matches: make([]domain.Match, 0, len(found.Pairings)),
		Stats:   found.Stats,
	}
	for _, p := range found.Pairings {
		result.Matches = append(result.Matches, p.Match())
	}

	if req.Explain && len(result.Matches) > 0 {
		c.explain(ctx, result.Matches)
	}

	if cacheKey != "" && !result.Stats.Interrupted {
		if err := c.Cache.SetMatches(ctx, cacheKey, result); err != nil {
			logger.WarnContext(ctx, "failed to write match cache", "error", err)
		}
	}

	return result, nil
}

// explain fills in the explanation of every match in place.
func (c *DiscoverMatches) explain(ctx context.Context, matches []domain.Match) {
	logger := domain.LoggerFromContext(ctx)

	requests, err := c.explanationRequests(ctx, matches)
	if err != nil {
		logger.WarnContext(ctx, "failed to load match details, using fallback explanations", "error", err)
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(max(c.Config.ExplainConcurrency, 1))
	for i := range matches {
		explanationReq := requests[i]
		grp.Go(func() error {
			text, generated := c.explainOne(grpCtx, explanationReq, err == nil)
			matches[i].Explanation = text
			matches[i].ExplanationIsGenerated = generated
			return nil
		})
	}
	_ = grp.Wait()
}

func (c *DiscoverMatches) explainOne(
	ctx context.Context, req domain.ExplanationRequest, detailsLoaded bool,
) (string, bool) {
	if detailsLoaded {
		text, err := c.Explainer.ExplainMatch(ctx, req)
		if err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "explanation generator failed, using fallback",
				"user2_id", req.Match.User2ID, "error", err)
		} else if text = strings.TrimSpace(text); text != "" {
			return domain.TruncateExplanation(text), true
		}
	}
	return domain.TruncateExplanation(domain.FallbackExplanation(req)), false
}

// explanationRequests resolves the names behind each match's ids. On error it
// still returns one request per match, filled with whatever ids are known.
func (c *DiscoverMatches) explanationRequests(
	ctx context.Context, matches []domain.Match,
) ([]domain.ExplanationRequest, error) {
	requests := make([]domain.ExplanationRequest, len(matches))
	for i, m := range matches {
		requests[i] = domain.ExplanationRequest{
			Match:            m,
			RequesterName:    m.User1ID,
			CandidateName:    m.User2ID,
			RequesterTeaches: m.Skill1TeachID,
			CandidateTeaches: m.Skill2TeachID,
			RequesterLearns:  m.LearnSkillID,
			CandidateLearns:  m.TeacherLearnSkillID,
		}
	}

	var skillIDs, userIDs []string
	for _, m := range matches {
		skillIDs = append(skillIDs, m.Skill1TeachID, m.Skill2TeachID, m.LearnSkillID, m.TeacherLearnSkillID)
		userIDs = append(userIDs, m.User1ID, m.User2ID)
	}
	slices.Sort(skillIDs)
	skillIDs = slices.Compact(skillIDs)
	slices.Sort(userIDs)
	userIDs = slices.Compact(userIDs)

	skills, err := c.SkillFetcher.FetchSkillsByID(ctx, skillIDs)
	if err != nil {
		return requests, fmt.Errorf("fetching matched skills: %w", err)
	}
	skillNames := make(map[string]string, len(skills))
	for _, s := range skills {
		skillNames[s.ID] = s.Name
	}

	users := make([]*domain.User, len(userIDs))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(max(c.Config.ExplainConcurrency, 1))
	for i, id := range userIDs {
		grp.Go(func() error {
			u, err := c.UserGetter.GetUser(grpCtx, id)
			if err != nil {
				return fmt.Errorf("getting user [%s]: %w", id, err)
			}
			users[i] = u
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return requests, err
	}
	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		if u != nil {
			usersByID[u.ID] = u
		}
	}

	for i := range requests {
		r := &requests[i]
		r.RequesterTeaches = nameOr(skillNames, r.Match.Skill1TeachID)
		r.CandidateTeaches = nameOr(skillNames, r.Match.Skill2TeachID)
		r.RequesterLearns = nameOr(skillNames, r.Match.LearnSkillID)
		r.CandidateLearns = nameOr(skillNames, r.Match.TeacherLearnSkillID)
		if u := usersByID[r.Match.User1ID]; u != nil {
			r.RequesterName = u.Name
			r.RequesterLanguage = u.PreferredLanguage
		}
		if u := usersByID[r.Match.User2ID]; u != nil {
			r.CandidateName = u.Name
			r.CandidateLanguage = u.PreferredLanguage
		}
	}
	return requests, nil
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// cacheKey fingerprints the requester's skill set together with the request
// shape. It returns "" when caching is off or the fingerprint cannot be built.
func (c *DiscoverMatches) cacheKey(ctx context.Context, req DiscoverMatchesRequest) string {
	if !c.Config.UseCache {
		return ""
	}

	skills, err := c.SkillsLister.ListUserSkills(ctx, req.UserID, "")
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to fingerprint skills, bypassing match cache", "error", err)
		return ""
	}
	return MatchCacheKey(c.Config.CacheNamespace, req, skills)
}

// MatchCacheKey builds the cache key for a request given the requester's skills.
// Skill order does not affect the key.
func MatchCacheKey(namespace string, req DiscoverMatchesRequest, skills []domain.Skill) string {
	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		canonical := s.CanonicalText
		if canonical == "" {
			canonical = domain.CanonicalizeSkill(s)
		}
		slots := make([]string, 0, len(s.Availability))
		for _, slot := range s.Availability {
			slots = append(slots, slot.Day+"@"+slot.Time)
		}
		slices.Sort(slots)
		lines = append(lines, fmt.Sprintf("%s|%s|%s|%d|%s", s.ID, canonical, s.EmbeddingModel, len(s.Embedding), strings.Join(slots, ",")))
	}
	slices.Sort(lines)

	h := sha256.New()
	fmt.Fprintf(h, "%s\n%d\n%t\n", namespace, req.Limit, req.Explain)
	for _, l := range lines {
		h.Write([]byte(l))
		h.Write([]byte{'\n'})
	}
	return "matches:" + req.UserID + ":" + hex.EncodeToString(h.Sum(nil))
}

// ConfigFingerprint summarizes the settings that change match results.
func ConfigFingerprint(config FindMatchesConfig) string {
	w := config.Weights
	return fmt.Sprintf("w=%g/%g/%g/%g;k=%d;min=%g;limit=%d;cap=%d;dim=%d",
		w.Semantic, w.Reciprocity, w.Availability, w.Preference,
		config.CandidatesPerSkill, config.MinScore, config.DefaultLimit, config.MaxPairings,
		config.EmbeddingDimension)
}
