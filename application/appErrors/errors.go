package apperrors

import (
	"net/http"

	"valuegate.jvcp.co/infrastructure/logger"
	server_response "valuegate.jvcp.co/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, false, message, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	fields := []string{}
	for _, err := range *errMessages {
		fields = append(fields, err.Error())
	}
	server_response.Responder.Respond(ctx, http.StatusBadRequest, false, "payload validation failed", map[string]any{
		"fields": fields,
	})
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, false, "malformed request payload", nil)
}

func ClientError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, false, message, nil)
}

// ExternalDependencyError hides upstream failure detail from the client and
// keeps it in the logs.
func ExternalDependencyError(ctx interface{}, serviceName string, err error) {
	logger.Error("external dependency failure", logger.LoggerOptions{
		Key:  "service",
		Data: serviceName,
	}, logger.LoggerOptions{
		Key:  "error",
		Data: err.Error(),
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable, false,
		"service temporarily unavailable, please try again shortly", nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("unhandled server error", logger.LoggerOptions{
		Key:  "error",
		Data: err.Error(),
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError, false,
		"something went wrong on our end", nil)
}
