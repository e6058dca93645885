package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	attendanceerrors "geo-attend/internal/attendance/errors"
	"geo-attend/internal/events"
	"geo-attend/internal/geo"
	"geo-attend/internal/geofence"
	"geo-attend/internal/location"
	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/shared/contextutil"
	"geo-attend/internal/state"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	StatusCheckedIn  = "Checked In"
	StatusCheckedOut = "Checked Out"

	labelInside  = "Within geofence"
	labelOutside = "Outside boundary"
)

// Store is the slice of state.Store the attendance flow needs.
//
//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Store interface {
	Load(ctx context.Context) (state.UserState, error)
	AddRecord(ctx context.Context, record state.AttendanceRecord) (state.UserState, error)
}

type Service interface {
	CheckIn(ctx context.Context) (RecordResponse, error)
	CheckOut(ctx context.Context) (RecordResponse, error)
	GetStatus(ctx context.Context) (StatusResponse, error)
	GetHistory(ctx context.Context) ([]RecordResponse, error)
}

type service struct {
	store     Store
	locations location.Source
	publisher EventPublisher
}

func NewService(store Store, locations location.Source, publisher EventPublisher) Service {
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{store: store, locations: locations, publisher: publisher}
}

// DeriveStatus reads the status off the newest record only.
func DeriveStatus(history []state.AttendanceRecord) string {
	if len(history) > 0 && history[0].Type == state.RecordIn {
		return StatusCheckedIn
	}
	return StatusCheckedOut
}

// OfficeFence converts the stored office into a fence. Nil in, nil out.
func OfficeFence(office *state.OfficeConfig) *geofence.Fence {
	if office == nil {
		return nil
	}
	return &geofence.Fence{Center: office.Location, Radius: office.Radius}
}

// CheckIn is only allowed inside the office geofence.
func (s *service) CheckIn(ctx context.Context) (RecordResponse, error) {
	st, err := s.load(ctx)
	if err != nil {
		return RecordResponse{}, err
	}
	if st.Office == nil {
		return RecordResponse{}, attendanceerrors.ErrOfficeNotConfigured
	}

	current := s.locations.Snapshot().Location
	if current == nil {
		return RecordResponse{}, attendanceerrors.ErrLocationUnavailable
	}

	res := geofence.Evaluate(current, OfficeFence(st.Office))
	if !res.IsInside() {
		return RecordResponse{}, attendanceerrors.ErrOutsideGeofence.WithDetails(map[string]any{
			"distance":     *res.Distance,
			"distanceText": geo.FormatDistance(*res.Distance),
			"radius":       st.Office.Radius,
		})
	}

	return s.record(ctx, state.RecordIn, *current, st.Office, res)
}

// CheckOut is allowed anywhere, but the record still needs a position.
func (s *service) CheckOut(ctx context.Context) (RecordResponse, error) {
	st, err := s.load(ctx)
	if err != nil {
		return RecordResponse{}, err
	}

	current := s.locations.Snapshot().Location
	if current == nil {
		return RecordResponse{}, attendanceerrors.ErrLocationUnavailable
	}

	res := geofence.Evaluate(current, OfficeFence(st.Office))
	return s.record(ctx, state.RecordOut, *current, st.Office, res)
}

func (s *service) GetStatus(ctx context.Context) (StatusResponse, error) {
	st, err := s.load(ctx)
	if err != nil {
		return StatusResponse{}, err
	}

	snap := s.locations.Snapshot()
	res := geofence.Evaluate(snap.Location, OfficeFence(st.Office))
	status := DeriveStatus(st.History)

	resp := StatusResponse{
		Status:          status,
		IsCheckedIn:     status == StatusCheckedIn,
		Geofence:        res.Status.String(),
		GeofenceLabel:   labelOutside,
		IsAtOffice:      res.IsInside(),
		Distance:        res.Distance,
		DistanceText:    "--",
		CurrentLocation: snap.Location,
		Locating:        snap.Locating,
		LocationError:   snap.Error,
		CanCheckIn:      res.IsInside(),
		CanCheckOut:     snap.Location != nil,
	}
	if res.IsInside() {
		resp.GeofenceLabel = labelInside
	}
	if res.Distance != nil {
		resp.DistanceText = geo.FormatDistance(*res.Distance)
	}
	if st.Office != nil {
		resp.OfficeName = st.Office.Name
		resp.Radius = st.Office.Radius
		if !resp.IsAtOffice && !resp.IsCheckedIn {
			resp.Hint = fmt.Sprintf("You must be within %sm of the office to check in.", formatRadius(st.Office.Radius))
		}
	}
	if last, ok := st.LastRecord(); ok {
		r := mapToResponse(last)
		resp.LastRecord = &r
	}
	return resp, nil
}

func (s *service) GetHistory(ctx context.Context) ([]RecordResponse, error) {
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(st.History), nil
}

func (s *service) load(ctx context.Context) (state.UserState, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return state.UserState{}, storageError(ctx, err)
	}
	return st, nil
}

func (s *service) record(
	ctx context.Context,
	typ state.RecordType,
	at geo.Location,
	office *state.OfficeConfig,
	res geofence.Result,
) (RecordResponse, error) {
	now := time.Now().UTC()
	rec := state.AttendanceRecord{
		ID:        uuid.New().String(),
		Timestamp: now.Format(state.TimestampLayout),
		Type:      typ,
		Location:  at,
		IsAuto:    false,
	}

	if _, err := s.store.AddRecord(ctx, rec); err != nil {
		return RecordResponse{}, storageError(ctx, err)
	}

	log := contextutil.GetLogger(ctx, zap.L())
	log.Info("attendance recorded",
		zap.String("record_id", rec.ID),
		zap.String("type", string(rec.Type)),
		zap.String("geofence", res.Status.String()),
	)

	event := events.AttendanceRecordedEvent{
		EventType:  events.AttendanceRecordedType,
		RecordID:   rec.ID,
		Type:       string(rec.Type),
		Timestamp:  rec.Timestamp,
		Latitude:   at.Latitude,
		Longitude:  at.Longitude,
		IsAuto:     rec.IsAuto,
		Distance:   res.Distance,
		OccurredAt: now,
	}
	if office != nil {
		event.OfficeName = office.Name
	}
	if err := s.publisher.PublishAttendanceRecorded(ctx, event); err != nil {
		log.Warn("publish attendance event failed", zap.String("record_id", rec.ID), zap.Error(err))
	}

	return mapToResponse(rec), nil
}

func storageError(ctx context.Context, err error) error {
	contextutil.GetLogger(ctx, zap.L()).Error("attendance storage failed", zap.Error(err))
	return apperror.Wrap(err,
		apperror.ErrStorageUnavailable.Code,
		apperror.ErrStorageUnavailable.Message,
		apperror.ErrStorageUnavailable.HTTPStatus,
	)
}

func formatRadius(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func mapToResponse(r state.AttendanceRecord) RecordResponse {
	method := "Manual"
	if r.IsAuto {
		method = "Auto"
	}
	return RecordResponse{
		ID:          r.ID,
		Timestamp:   r.Timestamp,
		Type:        string(r.Type),
		Location:    r.Location,
		IsAuto:      r.IsAuto,
		Method:      method,
		Coordinates: r.Location.String(),
	}
}

func mapToListResponse(records []state.AttendanceRecord) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res
}
