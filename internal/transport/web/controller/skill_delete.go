package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

type SkillDelete struct {
	Command command.Command[command.DeleteSkillRequest, command.Empty]
}

func (c SkillDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	req := command.DeleteSkillRequest{UserID: vars["user_id"], SkillID: vars["skill_id"]}
	logger := domain.LoggerFromContext(r.Context()).With("user_id", req.UserID, "skill_id", req.SkillID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	if _, err := c.Command.Execute(ctx, req); err != nil {
		logger.ErrorContext(ctx, "unable to delete skill", "error", err)
		w.WriteHeader(statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
