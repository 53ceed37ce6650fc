package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shamanshetty/TradeCraft/internal/command"
	cmdmocks "github.com/shamanshetty/TradeCraft/internal/command/mocks"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerMocks struct {
	discover *cmdmocks.MockCommand[command.DiscoverMatchesRequest, domain.MatchResult]
	upsert   *cmdmocks.MockCommand[command.UpsertSkillRequest, domain.Skill]
	remove   *cmdmocks.MockCommand[command.DeleteSkillRequest, command.Empty]
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	m := routerMocks{
		discover: cmdmocks.NewMockCommand[command.DiscoverMatchesRequest, domain.MatchResult](t),
		upsert:   cmdmocks.NewMockCommand[command.UpsertSkillRequest, domain.Skill](t),
		remove:   cmdmocks.NewMockCommand[command.DeleteSkillRequest, command.Empty](t),
	}
	h, err := MakeRouter(m.discover, m.upsert, m.remove, 0)
	require.NoError(t, err)
	return h, m
}

func TestMakeRouter_Routes(t *testing.T) {
	h, m := newTestRouter(t)

	m.discover.EXPECT().
		Execute(mock.Anything, command.DiscoverMatchesRequest{UserID: "alex", Limit: 5, Explain: true}).
		Return(domain.MatchResult{}, nil)
	m.remove.EXPECT().
		Execute(mock.Anything, command.DeleteSkillRequest{UserID: "alex", SkillID: "s1"}).
		Return(command.Empty{}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users/alex/matches?limit=5", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/users/alex/skills/s1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMakeRouter_Preflight(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/users/alex/skills/s1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := requestIDMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = domain.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36, "a UUID is generated when the caller sends none")
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
}
