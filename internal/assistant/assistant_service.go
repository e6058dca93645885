package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	assistanterrors "geo-attend/internal/assistant/errors"
	"geo-attend/internal/geo"
	"geo-attend/internal/location"
	"geo-attend/internal/shared/apperror"
	"geo-attend/internal/shared/contextutil"
	"geo-attend/internal/state"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	FallbackLookupFailed   = "Error searching for office location."
	FallbackNoCoordinates  = "Couldn't find coordinates."
	FallbackAnalysisFailed = "Failed to analyze data."
	FallbackNoAnalysis     = "No analysis available."
)

type HistorySource interface {
	Load(ctx context.Context) (state.UserState, error)
}

//go:generate mockgen -source=assistant_service.go -destination=mock/assistant_service_mock.go -package=mock
type Service interface {
	LookupOffice(ctx context.Context, req OfficeLookupRequest) (LookupResponse, error)
	AnalyzeAttendance(ctx context.Context) (AnalysisResponse, error)
}

type service struct {
	client    Client
	runner    *Runner
	history   HistorySource
	locations location.Source
	rdb       *redis.Client
	cacheTTL  time.Duration
	sf        *singleflight.Group
}

// NewService wires the assistant. rdb is optional and only caches
// successful office lookups.
func NewService(
	client Client,
	runner *Runner,
	history HistorySource,
	locations location.Source,
	rdb *redis.Client,
	cacheTTL time.Duration,
) Service {
	return &service{
		client:    client,
		runner:    runner,
		history:   history,
		locations: locations,
		rdb:       rdb,
		cacheTTL:  cacheTTL,
		sf:        &singleflight.Group{},
	}
}

func LookupCacheKey(query string, near *geo.Location) string {
	key := fmt.Sprintf("assistant:lookup:%s", strings.ToLower(strings.TrimSpace(query)))
	if near != nil {
		key = fmt.Sprintf("%s:%.3f,%.3f", key, near.Latitude, near.Longitude)
	}
	return key
}

func (s *service) LookupOffice(ctx context.Context, req OfficeLookupRequest) (LookupResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return LookupResponse{}, apperror.RequiredField("Query")
	}

	near := s.near(req)
	cacheKey := LookupCacheKey(query, near)
	log := contextutil.GetLogger(ctx, zap.L())

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp LookupResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				resp.Cached = true
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		res, err := Run(ctx, s.runner, KindOfficeLookup, func(taskCtx context.Context) (LookupResult, error) {
			return s.client.LookupOffice(taskCtx, query, near)
		})
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(res.Text) == "" {
			return LookupResponse{Text: FallbackNoCoordinates, GroundingURLs: res.GroundingURLs, Fallback: true}, nil
		}

		resp := LookupResponse{Text: res.Text, GroundingURLs: res.GroundingURLs}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					log.Warn("cache office lookup failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})

	if err != nil {
		if taskErr := mapTaskError(err); taskErr != nil {
			return LookupResponse{}, taskErr
		}
		log.Error("office lookup failed", zap.String("query", query), zap.Error(err))
		return LookupResponse{Text: FallbackLookupFailed, Fallback: true}, nil
	}

	return v.(LookupResponse), nil
}

func (s *service) AnalyzeAttendance(ctx context.Context) (AnalysisResponse, error) {
	log := contextutil.GetLogger(ctx, zap.L())

	st, err := s.history.Load(ctx)
	if err != nil {
		log.Error("load history for analysis failed", zap.Error(err))
		return AnalysisResponse{}, apperror.Wrap(err,
			apperror.ErrStorageUnavailable.Code,
			apperror.ErrStorageUnavailable.Message,
			apperror.ErrStorageUnavailable.HTTPStatus,
		)
	}

	text, err := Run(ctx, s.runner, KindAnalysis, func(taskCtx context.Context) (string, error) {
		return s.client.AnalyzeAttendance(taskCtx, st.History)
	})
	resp := AnalysisResponse{Text: text, Records: len(st.History)}

	switch {
	case err != nil:
		if taskErr := mapTaskError(err); taskErr != nil {
			return AnalysisResponse{}, taskErr
		}
		log.Error("attendance analysis failed", zap.Error(err))
		resp.Text, resp.Fallback = FallbackAnalysisFailed, true
	case strings.TrimSpace(text) == "":
		resp.Text, resp.Fallback = FallbackNoAnalysis, true
	}
	return resp, nil
}

func (s *service) near(req OfficeLookupRequest) *geo.Location {
	if req.Latitude != nil && req.Longitude != nil {
		return &geo.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}
	if s.locations == nil {
		return nil
	}
	return s.locations.Snapshot().Location
}

func mapTaskError(err error) error {
	switch {
	case errors.Is(err, ErrSuperseded):
		return assistanterrors.ErrSuperseded
	case errors.Is(err, ErrClosed):
		return assistanterrors.ErrUnavailable
	default:
		return nil
	}
}
