package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simci/internal/catalog"
	"simci/internal/common"
	"simci/internal/engine"
	"simci/internal/model"
	"simci/internal/stats"
	"simci/internal/store"
	"simci/pkg/api"
)

func newTestServer(t *testing.T) (*gin.Engine, *engine.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	cat := catalog.Default()
	cat.StepTime = map[string]catalog.Range{}
	// pin every step to never fail so runs are deterministic
	cat.FailProb = map[string]float64{}
	for _, steps := range cat.Pipelines {
		for _, s := range steps {
			cat.FailProb[s] = 0
		}
	}

	sim := engine.NewSimulator(cat, 1)
	eng := engine.New(cat, sim, engine.NewTracker(st, zap.NewNop()), st, zap.NewNop())
	eng.Sleep = func(time.Duration) {}

	r := gin.New()
	New(eng, st).Register(r)
	return r, eng, st
}

func do(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// unwrap decodes the {code, message, data} envelope into out.
func unwrap(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, common.SuccessCode, envelope.Code)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func TestStartRunReturnsID(t *testing.T) {
	r, eng, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/api/run", []byte(`{"job":"app-ci"}`))
	var resp api.RunResponse
	unwrap(t, w, &resp)
	assert.Len(t, resp.RunID, 8)

	eng.Wait()
}

func TestStartRunDefaultsToAppCI(t *testing.T) {
	r, eng, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/api/run", nil)
	var resp api.RunResponse
	unwrap(t, w, &resp)
	eng.Wait()

	var builds []model.Run
	unwrap(t, do(t, r, http.MethodGet, "/api/builds", nil), &builds)
	require.Len(t, builds, 1)
	assert.Equal(t, "app-ci", builds[0].Job)
}

func TestStartRunUnknownJobSucceeds(t *testing.T) {
	r, eng, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/api/run", []byte(`{"job":"made-up-job"}`))
	var resp api.RunResponse
	unwrap(t, w, &resp)
	eng.Wait()

	var hist []model.Run
	unwrap(t, do(t, r, http.MethodGet, "/api/history", nil), &hist)
	require.Len(t, hist, 1)
	assert.Equal(t, "made-up-job", hist[0].Job)
	assert.Equal(t, []string{"checkout", "unit-tests", "deploy-staging"}, hist[0].Steps)
	assert.Equal(t, model.StatusSuccess, hist[0].Status)
}

func TestGetLog(t *testing.T) {
	r, eng, _ := newTestServer(t)

	var started api.RunResponse
	unwrap(t, do(t, r, http.MethodPost, "/api/run", []byte(`{"job":"app-ci"}`)), &started)
	eng.Wait()

	var resp api.LogResponse
	unwrap(t, do(t, r, http.MethodGet, "/api/logs/"+started.RunID, nil), &resp)
	assert.Contains(t, resp.Log, "Run "+started.RunID+" started (job=app-ci)")
}

func TestGetLogMissingRunIsEmpty(t *testing.T) {
	r, _, _ := newTestServer(t)

	var resp api.LogResponse
	unwrap(t, do(t, r, http.MethodGet, "/api/logs/deadbeef", nil), &resp)
	assert.Equal(t, "", resp.Log)
}

func TestStatsEmptyHistory(t *testing.T) {
	r, _, _ := newTestServer(t)

	var summary stats.Summary
	unwrap(t, do(t, r, http.MethodGet, "/api/stats", nil), &summary)
	assert.Equal(t, stats.Summary{}, summary)
}

func TestDownloadMatchesHistory(t *testing.T) {
	r, eng, _ := newTestServer(t)

	unwrap(t, do(t, r, http.MethodPost, "/api/run", []byte(`{"job":"app-ci"}`)), nil)
	unwrap(t, do(t, r, http.MethodPost, "/api/run", []byte(`{"job":"api-ci"}`)), nil)
	eng.Wait()

	var hist []model.Run
	unwrap(t, do(t, r, http.MethodGet, "/api/history", nil), &hist)
	require.Len(t, hist, 2)

	w := do(t, r, http.MethodGet, "/api/history/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "history.json")

	var exported []model.Run
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	assert.Equal(t, hist, exported)
}

func TestResetClearsEverything(t *testing.T) {
	r, eng, _ := newTestServer(t)

	var started api.RunResponse
	unwrap(t, do(t, r, http.MethodPost, "/api/run", []byte(`{"job":"app-ci"}`)), &started)
	eng.Wait()

	var resp api.ResetResponse
	unwrap(t, do(t, r, http.MethodPost, "/api/reset", nil), &resp)
	assert.Equal(t, "reset done", resp.Message)

	var builds, hist []model.Run
	unwrap(t, do(t, r, http.MethodGet, "/api/builds", nil), &builds)
	unwrap(t, do(t, r, http.MethodGet, "/api/history", nil), &hist)
	assert.Empty(t, builds)
	assert.Empty(t, hist)

	var log api.LogResponse
	unwrap(t, do(t, r, http.MethodGet, "/api/logs/"+started.RunID, nil), &log)
	assert.Equal(t, "", log.Log)
}
