package attendance_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geo-attend/internal/attendance"
	attendanceerrors "geo-attend/internal/attendance/errors"
	attendanceMock "geo-attend/internal/attendance/mock"
	"geo-attend/internal/geo"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc attendance.Service, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	attendance.RegisterRoutes(r.Group("/api/v1"), attendance.NewHandler(svc, rdb), rdb)
	return r
}

func sampleRecord(id, typ string) attendance.RecordResponse {
	loc := geo.Location{Latitude: 1.5, Longitude: 2.25}
	return attendance.RecordResponse{
		ID:          id,
		Timestamp:   "2024-01-01T09:00:00.000Z",
		Type:        typ,
		Location:    loc,
		Method:      "Manual",
		Coordinates: loc.String(),
	}
}

func TestHandler_CheckIn(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		svc.EXPECT().CheckIn(gomock.Any()).Return(sampleRecord("rec-1", "IN"), nil)

		w := httptest.NewRecorder()
		setupRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"rec-1"`)
		assert.Contains(t, w.Body.String(), `"coordinates":"1.5000, 2.2500"`)
	})

	t.Run("outside geofence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		svc.EXPECT().CheckIn(gomock.Any()).Return(attendance.RecordResponse{},
			attendanceerrors.ErrOutsideGeofence.WithDetails(map[string]any{"distanceText": "1.11km"}))

		w := httptest.NewRecorder()
		setupRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "OUTSIDE_GEOFENCE")
		assert.Contains(t, w.Body.String(), "1.11km")
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		svc.EXPECT().CheckIn(gomock.Any()).Return(attendance.RecordResponse{}, errors.New("boom"))

		w := httptest.NewRecorder()
		setupRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_CheckOut_StoresIdempotentResult(t *testing.T) {
	const (
		cacheKey = "idemp:/api/v1/attendance/check-out:key-1"
		lockKey  = cacheKey + ":lock"
	)

	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	rec := sampleRecord("rec-2", "OUT")
	svc.EXPECT().CheckOut(gomock.Any()).Return(rec, nil)

	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	setupRouter(svc, rdb).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	distance := 120.4
	svc.EXPECT().GetStatus(gomock.Any()).Return(attendance.StatusResponse{
		Status:        attendance.StatusCheckedOut,
		Geofence:      "inside",
		GeofenceLabel: "Within geofence",
		IsAtOffice:    true,
		Distance:      &distance,
		DistanceText:  "120m",
		CanCheckIn:    true,
		CanCheckOut:   true,
	}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Checked Out"`)
	assert.Contains(t, w.Body.String(), `"distanceText":"120m"`)
}

func TestHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	svc.EXPECT().GetHistory(gomock.Any()).Return([]attendance.RecordResponse{
		sampleRecord("3", "IN"),
		sampleRecord("2", "OUT"),
		sampleRecord("1", "IN"),
	}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendance/history?page=2&page_size=2", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []attendance.RecordResponse `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
			Page       int `json:"page"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "1", body.Data[0].ID)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.Equal(t, 2, body.Meta.Page)
}
