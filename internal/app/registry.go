package app

import (
	"geo-attend/internal/assistant"
	"geo-attend/internal/attendance"
	"geo-attend/internal/config"
	"geo-attend/internal/location"
	"geo-attend/internal/middleware"
	"geo-attend/internal/office"
	"geo-attend/internal/shared/audit"
	"geo-attend/internal/state"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type modules struct {
	cfg       config.Config
	infra     *Infra
	publisher attendance.EventPublisher
	assistant assistant.Client
	runner    *assistant.Runner
	auditor   audit.Logger
}

func registerModules(router *gin.Engine, m modules) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.RateLimitByIP(rate.Limit(m.cfg.RateLimitRPS), m.cfg.RateBurst),
	)

	// --- Core ---
	store := m.infra.Store(m.cfg)
	tracker := location.NewTracker(zap.L().Named("location"))

	// --- Services ---
	officeService := office.NewService(store, m.cfg.DefaultRadius)
	attendanceService := attendance.NewService(store, tracker, m.publisher)
	assistantService := assistant.NewService(
		m.assistant,
		m.runner,
		store,
		tracker,
		m.infra.Redis,
		m.cfg.LookupCacheTTL,
	)

	// --- Handlers ---
	stateHandler := state.NewHandler(store, m.auditor)
	officeHandler := office.NewHandler(officeService)
	locationHandler := location.NewHandler(tracker)
	attendanceHandler := attendance.NewHandler(attendanceService, m.infra.Redis)
	assistantHandler := assistant.NewHandler(assistantService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		api.GET("/health", healthHandler(m.infra, m.cfg.StorageBackend, store.Key()))
		state.RegisterRoutes(api, stateHandler)
		office.RegisterRoutes(api, officeHandler)
		location.RegisterRoutes(api, locationHandler)
		attendance.RegisterRoutes(api, attendanceHandler, m.infra.Redis)
		assistant.RegisterRoutes(api, assistantHandler)
	}
}
