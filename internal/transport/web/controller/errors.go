package controller

import (
	"errors"
	"net/http"

	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

// statusForError maps command errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSkill):
		return http.StatusBadRequest
	case errors.Is(err, command.ErrSkillNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
