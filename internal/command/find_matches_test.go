package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shamanshetty/TradeCraft/internal/datasources/mocks"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testFindMatchesConfig() FindMatchesConfig {
	return FindMatchesConfig{
		Weights:            domain.DefaultWeights(),
		CandidatesPerSkill: 20,
		MinScore:           0.3,
		DefaultLimit:       10,
		FetchConcurrency:   4,
	}
}

var (
	vecPython  = []float32{1, 0, 0}
	vecSpanish = []float32{0, 1, 0}
	vecGuitar  = []float32{0, 0, 1}
	monEvening = []domain.AvailabilitySlot{{Day: "mon", Time: "evening"}}
)

func requesterSkills() []domain.Skill {
	return []domain.Skill{
		{ID: "r-learn-py", UserID: "requester", Mode: domain.SkillModeLearn, Name: "Python", Level: 2, Embedding: vecPython},
		{ID: "r-teach-es", UserID: "requester", Mode: domain.SkillModeTeach, Name: "Spanish", Level: 3, Embedding: vecSpanish, Availability: monEvening},
	}
}

type findMatchesMocks struct {
	skills     *mocks.MockUserSkillsLister
	similarity *mocks.MockSimilarSkillsLister
	fetcher    *mocks.MockSkillFetcher
	users      *mocks.MockUserGetter
}

func newFindMatchesMocks(t *testing.T) findMatchesMocks {
	return findMatchesMocks{
		skills:     mocks.NewMockUserSkillsLister(t),
		similarity: mocks.NewMockSimilarSkillsLister(t),
		fetcher:    mocks.NewMockSkillFetcher(t),
		users:      mocks.NewMockUserGetter(t),
	}
}

func (m findMatchesMocks) command(config FindMatchesConfig) *FindMatches {
	return NewFindMatches(m.skills, m.similarity, m.fetcher, m.users, config)
}

func TestFindMatches_Execute_PerfectCandidate(t *testing.T) {
	m := newFindMatchesMocks(t)

	candidateTeach := domain.Skill{
		ID: "c-teach-py", UserID: "candidate", Mode: domain.SkillModeTeach, Name: "Python",
		Level: 4, Embedding: vecPython, Availability: monEvening,
	}
	candidateLearn := domain.Skill{
		ID: "c-learn-es", UserID: "candidate", Mode: domain.SkillModeLearn, Name: "Spanish",
		Level: 1, Embedding: vecSpanish,
	}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester", PreferredLanguage: "en"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, vecPython, domain.SkillModeTeach, 20, "requester").
		Return([]domain.SimilarSkill{{SkillID: "c-teach-py", Score: 0.99}}, nil)
	m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"c-teach-py"}).Return([]domain.Skill{candidateTeach}, nil)
	m.users.EXPECT().GetUser(mock.Anything, "candidate").Return(&domain.User{ID: "candidate", PreferredLanguage: "en"}, nil)
	m.skills.EXPECT().ListUserSkills(mock.Anything, "candidate", domain.SkillModeLearn).Return([]domain.Skill{candidateLearn}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)

	require.Len(t, resp.Pairings, 1)
	p := resp.Pairings[0]
	assert.Equal(t, "requester", p.User1ID)
	assert.Equal(t, "candidate", p.User2ID)
	assert.Equal(t, "r-teach-es", p.Skill1TeachID)
	assert.Equal(t, "c-teach-py", p.Skill2TeachID)
	assert.Equal(t, "r-learn-py", p.LearnSkillID)
	assert.Equal(t, "c-learn-es", p.TeacherLearnSkillID)
	assert.GreaterOrEqual(t, p.Scores.Total, 0.8)
	assert.Equal(t, 1, resp.Stats.CandidatesConsidered)
	assert.Equal(t, 1, resp.Stats.PairingsScored)
	assert.False(t, resp.Stats.Interrupted)
}

func TestFindMatches_Execute_EmptyWithoutReciprocalSkills(t *testing.T) {
	cases := []struct {
		name   string
		skills []domain.Skill
	}{
		{
			name:   "no_teach_skills",
			skills: requesterSkills()[:1],
		},
		{
			name:   "no_learn_skills",
			skills: requesterSkills()[1:],
		},
		{
			name:   "no_skills",
			skills: nil,
		},
		{
			name: "teach_skill_without_embedding",
			skills: []domain.Skill{
				requesterSkills()[0],
				{ID: "r-teach", UserID: "requester", Mode: domain.SkillModeTeach, Name: "Cooking", Level: 3},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newFindMatchesMocks(t)
			m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(tc.skills, nil)

			ctx := domain.ContextWithLogger(context.Background(), testLogger())
			resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
			require.NoError(t, err)
			assert.Empty(t, resp.Pairings)
			// Similarity mock has no expectations, so any call fails the test.
		})
	}
}

func TestFindMatches_Execute_RequesterNotFound(t *testing.T) {
	m := newFindMatchesMocks(t)
	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(nil, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)
	assert.Empty(t, resp.Pairings)
}

func TestFindMatches_Execute_KeepsBestPairingPerUserPair(t *testing.T) {
	m := newFindMatchesMocks(t)

	candidateTeach := domain.Skill{
		ID: "c-teach-py", UserID: "candidate", Mode: domain.SkillModeTeach,
		Level: 4, Embedding: vecPython, Availability: monEvening,
	}
	goodLearn := domain.Skill{ID: "c-learn-es", UserID: "candidate", Mode: domain.SkillModeLearn, Level: 1, Embedding: vecSpanish}
	weakLearn := domain.Skill{ID: "c-learn-guitar", UserID: "candidate", Mode: domain.SkillModeLearn, Level: 5, Embedding: vecGuitar}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester", PreferredLanguage: "en"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, vecPython, domain.SkillModeTeach, 20, "requester").
		Return([]domain.SimilarSkill{{SkillID: "c-teach-py", Score: 0.99}}, nil)
	m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"c-teach-py"}).Return([]domain.Skill{candidateTeach}, nil)
	m.users.EXPECT().GetUser(mock.Anything, "candidate").Return(&domain.User{ID: "candidate", PreferredLanguage: "en"}, nil)
	m.skills.EXPECT().ListUserSkills(mock.Anything, "candidate", domain.SkillModeLearn).
		Return([]domain.Skill{weakLearn, goodLearn}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)

	require.Len(t, resp.Pairings, 1)
	assert.Equal(t, "c-learn-es", resp.Pairings[0].TeacherLearnSkillID)
	assert.Equal(t, 2, resp.Stats.PairingsScored)
	assert.Equal(t, 1, resp.Stats.SkippedDuplicatePair)
}

func TestFindMatches_Execute_SkipsUnusableCandidates(t *testing.T) {
	m := newFindMatchesMocks(t)

	wrongDimTeach := domain.Skill{ID: "odd-teach", UserID: "odd", Mode: domain.SkillModeTeach, Level: 4, Embedding: []float32{1, 0}}
	noEmbeddingTeach := domain.Skill{ID: "blank-teach", UserID: "blank", Mode: domain.SkillModeTeach, Level: 4}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, vecPython, domain.SkillModeTeach, 20, "requester").
		Return([]domain.SimilarSkill{{SkillID: "odd-teach"}, {SkillID: "blank-teach"}}, nil)
	m.fetcher.EXPECT().
		FetchSkillsByID(mock.Anything, []string{"odd-teach", "blank-teach"}).
		Return([]domain.Skill{wrongDimTeach, noEmbeddingTeach}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)

	assert.Empty(t, resp.Pairings)
	assert.Equal(t, 0, resp.Stats.CandidatesConsidered)
	assert.Equal(t, 1, resp.Stats.SkippedMalformed)
	assert.Equal(t, 1, resp.Stats.SkippedMissingEmbedding)
}

func TestFindMatches_Execute_CandidateWithoutUserRecord(t *testing.T) {
	m := newFindMatchesMocks(t)

	ghostTeach := domain.Skill{ID: "ghost-teach", UserID: "ghost", Mode: domain.SkillModeTeach, Name: "Python", Level: 4, Embedding: vecPython}
	ghostLearn := domain.Skill{ID: "ghost-learn", UserID: "ghost", Mode: domain.SkillModeLearn, Name: "Spanish", Level: 1, Embedding: vecSpanish}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester", PreferredLanguage: "en"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, vecPython, domain.SkillModeTeach, 20, "requester").
		Return([]domain.SimilarSkill{{SkillID: "ghost-teach", Score: 1}}, nil)
	m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"ghost-teach"}).Return([]domain.Skill{ghostTeach}, nil)
	m.users.EXPECT().GetUser(mock.Anything, "ghost").Return(nil, nil)
	m.skills.EXPECT().ListUserSkills(mock.Anything, "ghost", domain.SkillModeLearn).Return([]domain.Skill{ghostLearn}, nil)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)

	require.Len(t, resp.Pairings, 1)
	p := resp.Pairings[0]
	assert.Equal(t, "ghost", p.User2ID)
	assert.InDelta(t, 0.5, p.Scores.Preference, 1e-9)
	assert.InDelta(t, 0.875, p.Scores.Total, 1e-9)
	assert.Equal(t, 1, resp.Stats.CandidatesWithoutUser)
}

func TestFindMatches_Execute_SkipsSkillsFromOlderModel(t *testing.T) {
	m := newFindMatchesMocks(t)

	staleLearn := domain.Skill{
		ID: "r-learn-old", UserID: "requester", Mode: domain.SkillModeLearn, Name: "Chess", Level: 2,
		Embedding: []float32{0.6, 0.8},
	}
	skills := append([]domain.Skill{staleLearn}, requesterSkills()...)

	candidateTeach := domain.Skill{ID: "c-teach-py", UserID: "candidate", Mode: domain.SkillModeTeach, Level: 4, Embedding: vecPython}
	candidateLearn := domain.Skill{ID: "c-learn-es", UserID: "candidate", Mode: domain.SkillModeLearn, Level: 1, Embedding: vecSpanish}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(skills, nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, vecPython, domain.SkillModeTeach, 20, "requester").
		Return([]domain.SimilarSkill{{SkillID: "c-teach-py"}}, nil)
	m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"c-teach-py"}).Return([]domain.Skill{candidateTeach}, nil)
	m.users.EXPECT().GetUser(mock.Anything, "candidate").Return(&domain.User{ID: "candidate"}, nil)
	m.skills.EXPECT().ListUserSkills(mock.Anything, "candidate", domain.SkillModeLearn).Return([]domain.Skill{candidateLearn}, nil)

	config := testFindMatchesConfig()
	config.EmbeddingDimension = 3

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(config).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Stats.RequesterLearnSkills)
	assert.Equal(t, 1, resp.Stats.RequesterTeachSkills)
	assert.Equal(t, 1, resp.Stats.SkippedMalformed)
	require.Len(t, resp.Pairings, 1)
	assert.Equal(t, "c-teach-py", resp.Pairings[0].Skill2TeachID)
}

func TestFindMatches_Execute_UpstreamFailure(t *testing.T) {
	cases := []struct {
		name        string
		setup       func(m findMatchesMocks)
		errContains string
	}{
		{
			name: "requester_skills_error",
			setup: func(m findMatchesMocks) {
				m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).
					Return(nil, errors.New("connection refused"))
			},
			errContains: "listing requester skills",
		},
		{
			name: "similarity_error",
			setup: func(m findMatchesMocks) {
				m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
				m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
				m.similarity.EXPECT().
					ListSimilarSkills(mock.Anything, mock.Anything, domain.SkillModeTeach, 20, "requester").
					Return(nil, errors.New("index unavailable"))
			},
			errContains: "index unavailable",
		},
		{
			name: "candidate_user_error",
			setup: func(m findMatchesMocks) {
				m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
				m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
				m.similarity.EXPECT().
					ListSimilarSkills(mock.Anything, mock.Anything, domain.SkillModeTeach, 20, "requester").
					Return([]domain.SimilarSkill{{SkillID: "c-teach"}}, nil)
				m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"c-teach"}).Return([]domain.Skill{
					{ID: "c-teach", UserID: "candidate", Mode: domain.SkillModeTeach, Level: 3, Embedding: vecPython},
				}, nil)
				m.users.EXPECT().GetUser(mock.Anything, "candidate").Return(nil, errors.New("timeout"))
			},
			errContains: "getting candidate user",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newFindMatchesMocks(t)
			tc.setup(m)

			ctx := domain.ContextWithLogger(context.Background(), testLogger())
			_, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestFindMatches_Execute_CancelledDuringCandidateSearch(t *testing.T) {
	m := newFindMatchesMocks(t)
	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), testLogger()))
	defer cancel()

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, mock.Anything, domain.SkillModeTeach, 20, "requester").
		RunAndReturn(func(
			_ context.Context, _ []float32, _ domain.SkillMode, _ int, _ string,
		) ([]domain.SimilarSkill, error) {
			cancel()
			return nil, context.Canceled
		})

	resp, err := m.command(testFindMatchesConfig()).Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)
	assert.True(t, resp.Stats.Interrupted)
	assert.Empty(t, resp.Pairings)
}

func TestFindMatches_Execute_CancelledDuringScoring(t *testing.T) {
	m := newFindMatchesMocks(t)
	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), testLogger()))
	defer cancel()

	skills := append(requesterSkills(), domain.Skill{
		ID: "r-teach-gtr", UserID: "requester", Mode: domain.SkillModeTeach, Name: "Guitar", Level: 3, Embedding: vecGuitar,
	})
	candidateTeach := domain.Skill{ID: "c-teach-py", UserID: "candidate", Mode: domain.SkillModeTeach, Level: 4, Embedding: vecPython}
	candidateLearn := domain.Skill{ID: "c-learn-es", UserID: "candidate", Mode: domain.SkillModeLearn, Level: 1, Embedding: vecSpanish}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(skills, nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, vecPython, domain.SkillModeTeach, 20, "requester").
		Return([]domain.SimilarSkill{{SkillID: "c-teach-py"}}, nil)
	m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"c-teach-py"}).Return([]domain.Skill{candidateTeach}, nil)
	m.users.EXPECT().GetUser(mock.Anything, "candidate").Return(&domain.User{ID: "candidate"}, nil)
	m.skills.EXPECT().ListUserSkills(mock.Anything, "candidate", domain.SkillModeLearn).
		RunAndReturn(func(_ context.Context, _ string, _ domain.SkillMode) ([]domain.Skill, error) {
			// Lookups are done; the caller gives up before scoring finishes.
			cancel()
			return []domain.Skill{candidateLearn}, nil
		})

	cmd := m.command(testFindMatchesConfig())
	cmd.checkInterval = 1

	resp, err := cmd.Execute(ctx, FindMatchesRequest{UserID: "requester"})
	require.NoError(t, err)

	assert.True(t, resp.Stats.Interrupted)
	assert.Equal(t, 1, resp.Stats.PairingsScored)
	require.Len(t, resp.Pairings, 1)
	assert.Equal(t, "r-teach-es", resp.Pairings[0].Skill1TeachID)
}

func TestFindMatches_Execute_MaxPairingsCap(t *testing.T) {
	m := newFindMatchesMocks(t)

	var similar []domain.SimilarSkill
	var teaches []domain.Skill
	for _, id := range []string{"a", "b", "c"} {
		similar = append(similar, domain.SimilarSkill{SkillID: id + "-teach"})
		teaches = append(teaches, domain.Skill{
			ID: id + "-teach", UserID: id, Mode: domain.SkillModeTeach, Level: 4, Embedding: vecPython,
		})
	}

	m.skills.EXPECT().ListUserSkills(mock.Anything, "requester", domain.SkillMode("")).Return(requesterSkills(), nil)
	m.users.EXPECT().GetUser(mock.Anything, "requester").Return(&domain.User{ID: "requester"}, nil)
	m.similarity.EXPECT().
		ListSimilarSkills(mock.Anything, mock.Anything, domain.SkillModeTeach, 20, "requester").
		Return(similar, nil)
	m.fetcher.EXPECT().FetchSkillsByID(mock.Anything, []string{"a-teach", "b-teach", "c-teach"}).Return(teaches, nil)
	for _, id := range []string{"a", "b", "c"} {
		m.users.EXPECT().GetUser(mock.Anything, id).Return(&domain.User{ID: id}, nil)
		m.skills.EXPECT().ListUserSkills(mock.Anything, id, domain.SkillModeLearn).Return([]domain.Skill{
			{ID: id + "-learn", UserID: id, Mode: domain.SkillModeLearn, Level: 1, Embedding: vecSpanish},
		}, nil)
	}

	config := testFindMatchesConfig()
	config.MaxPairings = 2

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	resp, err := m.command(config).Execute(ctx, FindMatchesRequest{UserID: "requester", Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Stats.PairingsScored)
	require.Len(t, resp.Pairings, 2)
	assert.Equal(t, "a", resp.Pairings[0].User2ID)
	assert.Equal(t, "b", resp.Pairings[1].User2ID)
}

func TestPairingGenerator_All(t *testing.T) {
	learn := []domain.Skill{{ID: "l1"}, {ID: "l2"}}
	teach := []domain.Skill{{ID: "t1"}, {ID: "t2"}}
	gen := &PairingGenerator{
		RequesterLearn: learn,
		RequesterTeach: teach,
		Hits: [][]domain.Skill{
			{{ID: "ct1", UserID: "a"}, {ID: "ct-missing", UserID: "nobody"}},
			{{ID: "ct2", UserID: "b"}},
		},
		CandidateLearn: map[string][]domain.Skill{
			"a": {{ID: "cl-a"}},
			"b": {{ID: "cl-b1"}, {ID: "cl-b2"}},
		},
	}

	var got []string
	for p := range gen.All() {
		got = append(got, p.RequesterLearn.ID+"/"+p.CandidateTeach.ID+"/"+p.CandidateLearn.ID+"/"+p.RequesterTeach.ID)
	}

	assert.Equal(t, []string{
		"l1/ct1/cl-a/t1",
		"l1/ct1/cl-a/t2",
		"l2/ct2/cl-b1/t1",
		"l2/ct2/cl-b1/t2",
		"l2/ct2/cl-b2/t1",
		"l2/ct2/cl-b2/t2",
	}, got)

	var count int
	for range gen.All() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
