package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

const (
	defaultMatchesLimit = 10
	maxMatchesLimit     = 50
)

type MatchesList struct {
	Command     command.Command[command.DiscoverMatchesRequest, domain.MatchResult]
	CacheMaxAge time.Duration
}

type MatchesListResponse struct {
	Data     []domain.Match      `json:"data"`
	Metadata MatchesListMetadata `json:"metadata"`
}

type MatchesListMetadata struct {
	Stats domain.MatchStats `json:"stats"`
}

func (c MatchesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	logger := domain.LoggerFromContext(r.Context()).With("user_id", userID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	req, err := matchesRequestFromQuery(userID, r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse matches query", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Command.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to compute matches", "error", err)
		w.WriteHeader(statusForError(err))
		return
	}

	if result.Matches == nil {
		result.Matches = []domain.Match{}
	}

	w.Header().Set("Content-Type", "application/json")
	if c.CacheMaxAge > 0 && !result.Stats.Interrupted {
		w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(MatchesListResponse{
		Data:     result.Matches,
		Metadata: MatchesListMetadata{Stats: result.Stats},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write matches to response", "error", err)
	}
}

func matchesRequestFromQuery(userID string, q url.Values) (command.DiscoverMatchesRequest, error) {
	req := command.DiscoverMatchesRequest{
		UserID:  userID,
		Limit:   defaultMatchesLimit,
		Explain: true,
	}

	if q.Has("limit") {
		limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return req, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if limit < 1 || limit > maxMatchesLimit {
			return req, fmt.Errorf("limit [%d] outside range [1, %d]", limit, maxMatchesLimit)
		}
		req.Limit = int(limit)
	}

	if q.Has("explain") {
		explain, err := strconv.ParseBool(q.Get("explain"))
		if err != nil {
			return req, fmt.Errorf("unable to parse explain from query: %w", err)
		}
		req.Explain = explain
	}

	return req, nil
}
