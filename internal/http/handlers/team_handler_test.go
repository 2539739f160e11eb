package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhail4real/freelanci-catalog/internal/team"
)

type stubTeamFinder struct {
	members []team.Member
	err     error
}

func (f *stubTeamFinder) FindTeam(ctx context.Context, project string) ([]team.Member, error) {
	return f.members, f.err
}

func newTeamRouter(t *testing.T, finder TeamFinder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/team", NewTeamHandler(finder).FindTeam)
	return r
}

func TestTeamHandler_MissingProject(t *testing.T) {
	r := newTeamRouter(t, &stubTeamFinder{})

	req, _ := http.NewRequest("POST", "/team", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamHandler_Success(t *testing.T) {
	finder := &stubTeamFinder{members: []team.Member{
		{Name: "Alice", Role: "Frontend", Skills: "React"},
		{Name: "Dave", Role: "DevOps", Skills: "Kubernetes"},
	}}
	r := newTeamRouter(t, finder)

	req, _ := http.NewRequest("POST", "/team", strings.NewReader(`{"project": "delivery app"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Team []team.Member `json:"team"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Team, 2)
}

func TestTeamHandler_UpstreamMessageSurfaced(t *testing.T) {
	finder := &stubTeamFinder{err: &team.RequestError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Project description is too short",
	}}
	r := newTeamRouter(t, finder)

	req, _ := http.NewRequest("POST", "/team", strings.NewReader(`{"project": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Project description is too short", body.Message)
}

func TestTeamHandler_GenericFailure(t *testing.T) {
	finder := &stubTeamFinder{err: context.DeadlineExceeded}
	r := newTeamRouter(t, finder)

	req, _ := http.NewRequest("POST", "/team", strings.NewReader(`{"project": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body.Message)
}
