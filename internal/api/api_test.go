package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/backend/internal/api"
	"github.com/careerpilot/backend/internal/router"
	"github.com/careerpilot/backend/internal/store"
	"github.com/careerpilot/backend/internal/testdb"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter builds the full route table over an in-memory database,
// without redis or object storage.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	st := store.New(testdb.Open(t))
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	handlers := api.NewHandlers(st, nil, nil, "test-secret", logger)
	return router.SetupRouter(handlers)
}

func perform(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()
	w := perform(r, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "Dana", "dana@example.com")

	// duplicate email
	w := perform(r, "POST", "/api/v1/auth/register", "", map[string]string{
		"name": "Other", "email": "dana@example.com", "password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = perform(r, "POST", "/api/v1/auth/login", "", map[string]string{
		"email": "dana@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, "POST", "/api/v1/auth/login", "", map[string]string{
		"email": "dana@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/applications", "/api/v1/dashboard/stats"} {
		w := perform(r, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := perform(r, "GET", "/api/v1/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileLifecycle(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Dana", "dana@example.com")

	// the profile exists immediately after signup
	w := perform(r, "GET", "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	decode(t, w, &profile)
	assert.Equal(t, "Dana", profile["name"])
	assert.Equal(t, "dana@example.com", profile["email"])

	w = perform(r, "PUT", "/api/v1/profile", token, map[string]interface{}{
		"github_username": "danadev",
		"skills":          []string{"go", "sql"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &profile)
	assert.Equal(t, "danadev", profile["github_username"])
	// fields absent from the update stay put
	assert.Equal(t, "Dana", profile["name"])
}

func TestApplicationIsolationAcrossTenants(t *testing.T) {
	r := setupRouter(t)
	danaToken := registerUser(t, r, "Dana", "dana@example.com")
	eveToken := registerUser(t, r, "Eve", "eve@example.com")

	w := perform(r, "POST", "/api/v1/applications", danaToken, map[string]string{
		"job_title": "Backend Engineer",
		"company":   "Acme",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var app map[string]interface{}
	decode(t, w, &app)
	appID := app["id"].(string)

	// Eve sees an empty list and cannot reach Dana's row by id
	w = perform(r, "GET", "/api/v1/applications", eveToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Applications []map[string]interface{} `json:"applications"`
	}
	decode(t, w, &list)
	assert.Empty(t, list.Applications)

	w = perform(r, "GET", "/api/v1/applications/"+appID, eveToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, "PATCH", "/api/v1/applications/"+appID, eveToken, map[string]string{
		"status": "offer",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the owner still sees the original status
	w = perform(r, "GET", "/api/v1/applications/"+appID, danaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &app)
	assert.Equal(t, "applied", app["status"])
}

func TestApplicationStatusUpdateAndStats(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Dana", "dana@example.com")

	statuses := []string{"applied", "applied", "viewed", "interview", "offer", "rejected"}
	ids := make([]string, 0, len(statuses))
	for i, status := range statuses {
		w := perform(r, "POST", "/api/v1/applications", token, map[string]string{
			"job_title": fmt.Sprintf("Role %d", i),
			"company":   "Acme",
			"status":    status,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var app map[string]interface{}
		decode(t, w, &app)
		ids = append(ids, app["id"].(string))
	}

	w := perform(r, "GET", "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Total     int64 `json:"total"`
		Applied   int64 `json:"applied"`
		Interview int64 `json:"interview"`
		Offer     int64 `json:"offer"`
		Rejected  int64 `json:"rejected"`
	}
	decode(t, w, &stats)
	assert.EqualValues(t, 6, stats.Total)
	assert.EqualValues(t, 2, stats.Applied)
	assert.EqualValues(t, 1, stats.Interview)
	assert.EqualValues(t, 1, stats.Offer)
	assert.EqualValues(t, 1, stats.Rejected)

	// move one application forward and watch the funnel follow
	w = perform(r, "PATCH", "/api/v1/applications/"+ids[0], token, map[string]string{
		"status": "interview",
		"notes":  "phone screen scheduled",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = perform(r, "GET", "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &stats)
	assert.EqualValues(t, 6, stats.Total)
	assert.EqualValues(t, 1, stats.Applied)
	assert.EqualValues(t, 2, stats.Interview)

	// an unknown status is rejected without a write
	w = perform(r, "PATCH", "/api/v1/applications/"+ids[1], token, map[string]string{
		"status": "ghosted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLearningProgressAndStreak(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Dana", "dana@example.com")

	w := perform(r, "GET", "/api/v1/dashboard/streak", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var streak struct {
		StreakDays int `json:"streak_days"`
	}
	decode(t, w, &streak)
	assert.Equal(t, 0, streak.StreakDays)

	w = perform(r, "POST", "/api/v1/learning/progress", token, map[string]interface{}{
		"roadmap_id":         "backend-go",
		"milestone_id":       "goroutines",
		"completed":          true,
		"time_spent_minutes": 45,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// repeating the milestone updates in place
	w = perform(r, "POST", "/api/v1/learning/progress", token, map[string]interface{}{
		"roadmap_id":         "backend-go",
		"milestone_id":       "goroutines",
		"completed":          true,
		"time_spent_minutes": 90,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(r, "GET", "/api/v1/learning/progress", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var progress struct {
		Progress []map[string]interface{} `json:"progress"`
	}
	decode(t, w, &progress)
	require.Len(t, progress.Progress, 1)
	assert.EqualValues(t, 90, progress.Progress[0]["time_spent_minutes"])

	w = perform(r, "GET", "/api/v1/dashboard/streak", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &streak)
	assert.Equal(t, 1, streak.StreakDays)
}

func TestWellnessValidation(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Dana", "dana@example.com")

	w := perform(r, "POST", "/api/v1/wellness", token, map[string]interface{}{
		"mood":         "good",
		"energy_level": 11,
		"stress_level": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, "POST", "/api/v1/wellness", token, map[string]interface{}{
		"mood":         "good",
		"energy_level": 7,
		"stress_level": 4,
		"sleep_hours":  7.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = perform(r, "GET", "/api/v1/wellness?limit=5", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Entries []map[string]interface{} `json:"entries"`
	}
	decode(t, w, &history)
	assert.Len(t, history.Entries, 1)
}

func TestSavedJobsAndInterviews(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Dana", "dana@example.com")

	w := perform(r, "POST", "/api/v1/jobs/saved", token, map[string]interface{}{
		"job_title":       "Staff Engineer",
		"company":         "Hooli",
		"required_skills": []string{"go", "postgres"},
		"match_score":     0.91,
		"source_platform": "linkedin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var job map[string]interface{}
	decode(t, w, &job)

	w = perform(r, "DELETE", "/api/v1/jobs/saved/"+job["id"].(string), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, "POST", "/api/v1/interviews", token, map[string]interface{}{
		"job_title":      "Staff Engineer",
		"interview_type": "technical",
		"questions":      []string{"describe a race condition you debugged"},
		"overall_score":  7.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var session map[string]interface{}
	decode(t, w, &session)

	w = perform(r, "GET", "/api/v1/interviews/"+session["id"].(string), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, "POST", "/api/v1/interviews", token, map[string]interface{}{
		"job_title":      "Staff Engineer",
		"interview_type": "casual",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountDeletion(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Dana", "dana@example.com")

	w := perform(r, "POST", "/api/v1/applications", token, map[string]string{
		"job_title": "Backend Engineer", "company": "Acme",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, "DELETE", "/api/v1/auth/account", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// credentials die with the tenant
	w = perform(r, "POST", "/api/v1/auth/login", "", map[string]string{
		"email": "dana@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the email is free to register again, with a clean slate
	fresh := registerUser(t, r, "Dana II", "dana@example.com")
	w = perform(r, "GET", "/api/v1/applications", fresh, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Applications []map[string]interface{} `json:"applications"`
	}
	decode(t, w, &list)
	assert.Empty(t, list.Applications)
}
