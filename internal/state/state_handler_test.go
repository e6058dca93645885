package state_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"geo-attend/internal/shared/audit"
	"geo-attend/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	loadFn  func(ctx context.Context) (state.UserState, error)
	resetFn func(ctx context.Context) error
}

func (f *fakeManager) Load(ctx context.Context) (state.UserState, error) { return f.loadFn(ctx) }
func (f *fakeManager) Reset(ctx context.Context) error { return f.resetFn(ctx) }

type recordingAuditor struct {
	entries []audit.Entry
}

func (r *recordingAuditor) Log(_ context.Context, e audit.Entry) { r.entries = append(r.entries, e) }

func setupRouter(h *state.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	state.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func TestHandler_Get(t *testing.T) {
	office := sampleOffice()
	mgr := &fakeManager{
		loadFn: func(ctx context.Context) (state.UserState, error) {
			return state.UserState{IsConfigured: true, Office: &office, History: []state.AttendanceRecord{}}, nil
		},
	}
	r := setupRouter(state.NewHandler(mgr, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Ok   bool            `json:"ok"`
		Data state.UserState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.True(t, body.Data.IsConfigured)
	assert.Equal(t, "Main HQ", body.Data.Office.Name)
}

func TestHandler_GetStorageFailure(t *testing.T) {
	mgr := &fakeManager{
		loadFn: func(ctx context.Context) (state.UserState, error) {
			return state.UserState{}, errors.New("disk gone")
		},
	}
	r := setupRouter(state.NewHandler(mgr, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
	assert.NotContains(t, w.Body.String(), "disk gone")
}

func TestHandler_Reset(t *testing.T) {
	resetCalled := false
	mgr := &fakeManager{
		resetFn: func(ctx context.Context) error {
			resetCalled = true
			return nil
		},
	}
	auditor := &recordingAuditor{}
	r := setupRouter(state.NewHandler(mgr, auditor))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/state", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resetCalled)
	require.Len(t, auditor.entries, 1)
	assert.Equal(t, "STATE_RESET", auditor.entries[0].Action)
	assert.Contains(t, w.Body.String(), `"isConfigured":false`)
}
