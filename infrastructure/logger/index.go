package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

type LoggerOptions struct {
	Key  string
	Data interface{}
}

// InitializeLogger builds the process-wide zap logger. Safe to call more
// than once; later calls are no-ops.
func InitializeLogger() {
	if Logger != nil {
		return
	}
	var err error
	if os.Getenv("ENV") == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
}

// This logs info level messages.
func Info(msg string, payload ...LoggerOptions) {
	InitializeLogger()
	Logger.Info(msg, toZapFields(payload)...)
}

// This logs error messages.
// describe the incident in msg and pass the error through logger options
// with key error
func Error(msg string, payload ...LoggerOptions) {
	InitializeLogger()
	Logger.Error(msg, toZapFields(payload)...)
}

// This logs warning messages.
func Warning(msg string, payload ...LoggerOptions) {
	InitializeLogger()
	Logger.Warn(msg, toZapFields(payload)...)
}

func toZapFields(payload []LoggerOptions) []zapcore.Field {
	zapFields := []zapcore.Field{}
	for _, data := range payload {
		zapFields = append(zapFields, zap.Any(data.Key, data.Data))
	}
	return zapFields
}

// Redact masks an identifier so it can be referenced in log lines without
// exposing it. Credential, token and code values must never be logged at
// all, redacted or not.
func Redact(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:2] + strings.Repeat("*", 4) + value[len(value)-2:]
}
