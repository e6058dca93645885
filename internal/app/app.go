package app

import (
	"context"

	"geo-attend/internal/assistant"
	"geo-attend/internal/attendance"
	"geo-attend/internal/config"
	"geo-attend/internal/shared/audit"
	"geo-attend/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp opens the infrastructure, wires every module onto router and
// returns a cleanup func that cancels assistant work and closes connections.
func BuildApp(router *gin.Engine, cfg config.Config, auditor audit.Logger) (func(), error) {
	infra, err := OpenInfra(cfg)
	if err != nil {
		return nil, err
	}

	publisher := attendance.NewNoopEventPublisher()
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(context.Background(), cfg.KafkaBroker, cfg.ConnectRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.addCloser(writer.Close)
		publisher = attendance.NewKafkaEventPublisher(writer, cfg.AttendanceTopic)
	} else {
		zap.L().Info("KAFKA_BROKER not set, attendance events are not published")
	}

	client := assistant.NewDisabledClient()
	if cfg.GeminiAPIKey != "" {
		client, err = assistant.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.LookupModel, cfg.AnalysisModel)
		if err != nil {
			infra.Close()
			return nil, err
		}
	} else {
		zap.L().Warn("GEMINI_API_KEY not set, assistant answers with fallback text")
	}
	runner := assistant.NewRunner(cfg.AssistantTimeout)

	// 2. Register Modules & Routes
	registerModules(router, modules{
		cfg:       cfg,
		infra:     infra,
		publisher: publisher,
		assistant: client,
		runner:    runner,
		auditor:   auditor,
	})

	cleanup := func() {
		runner.Close()
		infra.Close()
	}
	return cleanup, nil
}
