package vizweb

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/astarkit/internal/grid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, router http.Handler) InitResponse {
	t.Helper()
	density := 0.2
	w := do(t, router, http.MethodPost, "/api/sessions", InitRequest{Width: 10, Height: 6, Clusters: 2, Steps: 10, Density: &density, Seed: 11})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp InitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateSession(t *testing.T) {
	router := NewServer(nil).Router()
	resp := createSession(t, router)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 10, resp.W)
	assert.Equal(t, 6, resp.H)
	assert.NotEqual(t, resp.Start, resp.Goal)
	assert.NotContains(t, resp.Walls, resp.Start)
	assert.NotContains(t, resp.Walls, resp.Goal)
}

func TestCreateSessionDefaults(t *testing.T) {
	router := NewServer(nil).Router()
	defaults := grid.DefaultRandomParams()

	for name, body := range map[string]string{"empty body": "", "empty object": "{}"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp InitResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, defaults.Width, resp.W)
			assert.Equal(t, defaults.Height, resp.H)
			assert.NotEmpty(t, resp.Walls)
		})
	}
}

func TestCreateSessionExplicitZeroDensity(t *testing.T) {
	router := NewServer(nil).Router()
	w := do(t, router, http.MethodPost, "/api/sessions", map[string]any{"w": 8, "h": 8, "density": 0, "seed": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var resp InitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Walls)
}

func TestSessionLimitEvictsLeastRecentlyUsed(t *testing.T) {
	router := NewServer(nil, WithMaxSessions(2)).Router()
	first := createSession(t, router)
	second := createSession(t, router)

	// Touch the first session so the second becomes the oldest.
	w := do(t, router, http.MethodPost, "/api/sessions/"+first.ID+"/step", nil)
	require.Equal(t, http.StatusOK, w.Code)

	third := createSession(t, router)

	w = do(t, router, http.MethodPost, "/api/sessions/"+second.ID+"/step", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	for _, id := range []string{first.ID, third.ID} {
		w = do(t, router, http.MethodPost, "/api/sessions/"+id+"/step", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestWithMaxSessionsIgnoresNonPositive(t *testing.T) {
	s := NewServer(nil, WithMaxSessions(0))
	assert.Equal(t, DefaultMaxSessions, s.maxSessions)
}

func TestCreateSessionInvalidBody(t *testing.T) {
	router := NewServer(nil).Router()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestStepUntilDone(t *testing.T) {
	router := NewServer(nil).Router()
	created := createSession(t, router)

	var snap Snapshot
	for i := 0; i < 1000; i++ {
		w := do(t, router, http.MethodPost, "/api/sessions/"+created.ID+"/step", nil)
		require.Equal(t, http.StatusOK, w.Code)
		snap = Snapshot{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		if snap.Done {
			break
		}
	}
	require.True(t, snap.Done)
	if snap.Found {
		require.NotEmpty(t, snap.Path)
		assert.Equal(t, created.Start, snap.Path[0])
		assert.Equal(t, created.Goal, snap.Path[len(snap.Path)-1])
	}

	w := do(t, router, http.MethodGet, "/api/sessions/"+created.ID+"/render", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, w.Body.String(), "S")
	assert.Contains(t, w.Body.String(), "G")
}

func TestDeleteSession(t *testing.T) {
	router := NewServer(nil).Router()
	created := createSession(t, router)

	w := do(t, router, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownSession(t *testing.T) {
	router := NewServer(nil).Router()
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/sessions/missing/step"},
		{http.MethodGet, "/api/sessions/missing/render"},
	} {
		w := do(t, router, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "SESSION_NOT_FOUND", resp.Code)
	}
}
