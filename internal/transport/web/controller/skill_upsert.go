package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

const maxSkillBodyBytes = 64 << 10

// SkillUpsert creates a skill (POST, no skill_id in the path) or replaces one (PUT).
type SkillUpsert struct {
	Command command.Command[command.UpsertSkillRequest, domain.Skill]
}

type SkillUpsertRequest struct {
	Mode         domain.SkillMode          `json:"mode"`
	Name         string                    `json:"name"`
	Level        int                       `json:"level"`
	Availability []domain.AvailabilitySlot `json:"availability"`
}

func (c SkillUpsert) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	skillID := vars["skill_id"]
	logger := domain.LoggerFromContext(r.Context()).With("user_id", userID, "skill_id", skillID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body SkillUpsertRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSkillBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode skill body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	skill, err := c.Command.Execute(ctx, command.UpsertSkillRequest{Skill: domain.Skill{
		ID:           skillID,
		UserID:       userID,
		Mode:         body.Mode,
		Name:         body.Name,
		Level:        body.Level,
		Availability: body.Availability,
	}})
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to store skill", "error", err)
		} else {
			logger.InfoContext(ctx, "rejected skill", "error", err)
		}
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if skillID == "" {
		w.WriteHeader(http.StatusCreated)
	}
	if err := json.NewEncoder(w).Encode(skill); err != nil {
		logger.ErrorContext(ctx, "unable to write skill to response", "error", err)
	}
}
