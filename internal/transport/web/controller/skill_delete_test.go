package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shamanshetty/TradeCraft/internal/command"
	cmdmocks "github.com/shamanshetty/TradeCraft/internal/command/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSkillDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		commandErr error
		wantStatus int
	}{
		{
			name:       "deleted",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "not_found",
			commandErr: command.ErrSkillNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store_error",
			commandErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteCmd := cmdmocks.NewMockCommand[command.DeleteSkillRequest, command.Empty](t)
			deleteCmd.EXPECT().
				Execute(mock.Anything, command.DeleteSkillRequest{UserID: "alex", SkillID: "s1"}).
				Return(command.Empty{}, tc.commandErr)

			controller := SkillDelete{Command: deleteCmd}

			req := httptest.NewRequest(http.MethodDelete, "/v1/users/alex/skills/s1", nil)
			req = testContext(map[string]string{"user_id": "alex", "skill_id": "s1"})(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
