package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/shamanshetty/TradeCraft/internal/transport/web/controller"
)

func MakeRouter(
	discoverMatchesCmd command.Command[command.DiscoverMatchesRequest, domain.MatchResult],
	upsertSkillCmd command.Command[command.UpsertSkillRequest, domain.Skill],
	deleteSkillCmd command.Command[command.DeleteSkillRequest, command.Empty],
	matchesCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware)

	r.Handle("/v1/users/{user_id}/matches", controller.MatchesList{
		Command:     discoverMatchesCmd,
		CacheMaxAge: matchesCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/skills", controller.SkillUpsert{
		Command: upsertSkillCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/skills/{skill_id}", controller.SkillUpsert{
		Command: upsertSkillCmd,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/skills/{skill_id}", controller.SkillDelete{
		Command: deleteSkillCmd,
	}).Methods(http.MethodDelete)

	return r, nil
}
