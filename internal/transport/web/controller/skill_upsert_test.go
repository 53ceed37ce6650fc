package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shamanshetty/TradeCraft/internal/command"
	cmdmocks "github.com/shamanshetty/TradeCraft/internal/command/mocks"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSkillUpsert_ServeHTTP(t *testing.T) {
	validBody := `{"mode":"TEACH","name":"Python","level":4,"availability":[{"day":"mon","time":"evening"}]}`
	wantSkill := domain.Skill{
		UserID:       "alex",
		Mode:         domain.SkillModeTeach,
		Name:         "Python",
		Level:        4,
		Availability: []domain.AvailabilitySlot{{Day: "mon", Time: "evening"}},
	}

	cases := []struct {
		name       string
		method     string
		vars       map[string]string
		body       string
		expectCmd  bool
		commandErr error
		wantStatus int
	}{
		{
			name:       "create",
			method:     http.MethodPost,
			vars:       map[string]string{"user_id": "alex"},
			body:       validBody,
			expectCmd:  true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "replace",
			method:     http.MethodPut,
			vars:       map[string]string{"user_id": "alex", "skill_id": "s1"},
			body:       validBody,
			expectCmd:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed_json",
			method:     http.MethodPost,
			vars:       map[string]string{"user_id": "alex"},
			body:       `{"mode":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_field",
			method:     http.MethodPost,
			vars:       map[string]string{"user_id": "alex"},
			body:       `{"mode":"TEACH","name":"Python","level":4,"embedding":[1,2]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_skill",
			method:     http.MethodPost,
			vars:       map[string]string{"user_id": "alex"},
			body:       validBody,
			expectCmd:  true,
			commandErr: fmt.Errorf("%w: level out of range", domain.ErrInvalidSkill),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "someone_elses_skill",
			method:     http.MethodPut,
			vars:       map[string]string{"user_id": "alex", "skill_id": "s1"},
			body:       validBody,
			expectCmd:  true,
			commandErr: command.ErrSkillNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "embedder_down",
			method:     http.MethodPost,
			vars:       map[string]string{"user_id": "alex"},
			body:       validBody,
			expectCmd:  true,
			commandErr: fmt.Errorf("%w: embedding skill", domain.ErrUpstreamFailure),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upsertCmd := cmdmocks.NewMockCommand[command.UpsertSkillRequest, domain.Skill](t)

			expected := wantSkill
			expected.ID = tc.vars["skill_id"]
			stored := expected
			if stored.ID == "" {
				stored.ID = "generated-id"
			}

			if tc.expectCmd {
				var result domain.Skill
				if tc.commandErr == nil {
					result = stored
				}
				upsertCmd.EXPECT().
					Execute(mock.Anything, command.UpsertSkillRequest{Skill: expected}).
					Return(result, tc.commandErr)
			}

			controller := SkillUpsert{Command: upsertCmd}

			req := httptest.NewRequest(tc.method, "/v1/users/alex/skills", strings.NewReader(tc.body))
			req = testContext(tc.vars)(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus < http.StatusBadRequest {
				var got domain.Skill
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, stored, got)
			}
		})
	}
}
