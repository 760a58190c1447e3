package telemetry

import (
	"context"
	"time"

	"valuegate.jvcp.co/application/utils"
	"valuegate.jvcp.co/infrastructure/logger"
	"valuegate.jvcp.co/infrastructure/network"
)

// AccessLog is the best-effort telemetry sink for lead and valuation events.
// Record must never block the calling request and never surface a failure.
type AccessLog interface {
	Record(eventKind string, fields map[string]any)
}

// WebhookAccessLog ships events to a collector endpoint (an Apps Script
// webhook in front of the lead spreadsheet, in the current deployment).
type WebhookAccessLog struct {
	network *network.NetworkController
}

func NewWebhookAccessLog(webhookURL string, timeout time.Duration) *WebhookAccessLog {
	return &WebhookAccessLog{
		network: network.NewNetworkController(webhookURL, timeout),
	}
}

// Record ships the event asynchronously. Failures are logged and dropped.
func (wal *WebhookAccessLog) Record(eventKind string, fields map[string]any) {
	event := map[string]any{
		"id":         utils.GenerateULIDString(),
		"event":      eventKind,
		"recordedAt": time.Now().UTC().Format(time.RFC3339),
	}
	for key, value := range fields {
		event[key] = value
	}
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Warning("access log sink panicked", logger.LoggerOptions{
					Key:  "panic",
					Data: recovered,
				})
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, statusCode, err := wal.network.Post(ctx, "", nil, event)
		if err != nil {
			logger.Warning("access log event dropped", logger.LoggerOptions{
				Key:  "event",
				Data: eventKind,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err.Error(),
			})
			return
		}
		if *statusCode >= 400 {
			logger.Warning("access log collector refused event", logger.LoggerOptions{
				Key:  "event",
				Data: eventKind,
			}, logger.LoggerOptions{
				Key:  "statusCode",
				Data: *statusCode,
			})
		}
	}()
}

// NoopAccessLog drops every event. Used when no collector is configured.
type NoopAccessLog struct{}

func (NoopAccessLog) Record(string, map[string]any) {}
