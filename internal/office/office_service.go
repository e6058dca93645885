package office

import (
	"context"
	"strings"

	"geo-attend/internal/geo"
	officeerrors "geo-attend/internal/office/errors"
	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/shared/contextutil"
	"geo-attend/internal/state"

	"go.uber.org/zap"
)

//go:generate mockgen -source=office_service.go -destination=mock/office_service_mock.go -package=mock
type Store interface {
	Load(ctx context.Context) (state.UserState, error)
	SaveOffice(ctx context.Context, office state.OfficeConfig) (state.UserState, error)
}

type Service interface {
	Get(ctx context.Context) (OfficeResponse, error)
	Save(ctx context.Context, req SaveOfficeRequest) (OfficeResponse, error)
}

type service struct {
	store         Store
	defaultRadius float64
}

// NewService returns the office service. defaultRadius applies when a save
// request leaves the radius out.
func NewService(store Store, defaultRadius float64) Service {
	return &service{store: store, defaultRadius: defaultRadius}
}

func (s *service) Get(ctx context.Context) (OfficeResponse, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return OfficeResponse{}, storageError(ctx, err)
	}
	if st.Office == nil {
		return OfficeResponse{}, officeerrors.ErrOfficeNotConfigured
	}
	return mapToResponse(*st.Office), nil
}

// Save replaces the office. Attendance history is left untouched.
func (s *service) Save(ctx context.Context, req SaveOfficeRequest) (OfficeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return OfficeResponse{}, apperror.RequiredField("Name")
	}
	if req.Latitude == nil {
		return OfficeResponse{}, apperror.RequiredField("Latitude")
	}
	if req.Longitude == nil {
		return OfficeResponse{}, apperror.RequiredField("Longitude")
	}

	radius := req.Radius
	if radius == 0 {
		radius = s.defaultRadius
	}
	if radius <= 0 {
		return OfficeResponse{}, officeerrors.ErrInvalidRadius
	}

	cfg := state.OfficeConfig{
		Name:    name,
		Address: firstNonEmpty(req.Address, req.Query, name),
		Location: geo.Location{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		},
		Radius: radius,
	}

	if _, err := s.store.SaveOffice(ctx, cfg); err != nil {
		return OfficeResponse{}, storageError(ctx, err)
	}

	contextutil.GetLogger(ctx, zap.L()).Info("office saved",
		zap.String("name", cfg.Name),
		zap.Stringer("location", cfg.Location),
		zap.Float64("radius", cfg.Radius),
	)
	return mapToResponse(cfg), nil
}

func storageError(ctx context.Context, err error) error {
	contextutil.GetLogger(ctx, zap.L()).Error("office storage failed", zap.Error(err))
	return apperror.Wrap(err,
		apperror.ErrStorageUnavailable.Code,
		apperror.ErrStorageUnavailable.Message,
		apperror.ErrStorageUnavailable.HTTPStatus,
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func mapToResponse(o state.OfficeConfig) OfficeResponse {
	return OfficeResponse{
		Name:        o.Name,
		Address:     o.Address,
		Location:    o.Location,
		Radius:      o.Radius,
		Coordinates: o.Location.String(),
	}
}
