package server_response

import (
	"net/http"

	"valuegate.jvcp.co/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

type ginResponder struct{}

var Responder = ginResponder{}

// Respond sends the {ok, ...} JSON envelope and stops any further handlers.
func (gr ginResponder) Respond(ctx interface{}, code int, ok bool, errMessage string, body map[string]any) {
	ginCtx, castOk := (ctx).(*gin.Context)
	if !castOk {
		logger.Error("could not transform ctx to *gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.Abort()
	response := map[string]any{
		"ok": ok,
	}
	if errMessage != "" {
		response["error"] = errMessage
	}
	for key, value := range body {
		response[key] = value
	}
	ginCtx.JSON(code, response)
}

// Redirect sends the browser to location and stops any further handlers.
// Browser-initiated steps fail with a redirect-and-reason, never a JSON body.
func (gr ginResponder) Redirect(ctx interface{}, location string) {
	ginCtx, castOk := (ctx).(*gin.Context)
	if !castOk {
		logger.Error("could not transform ctx to *gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.Redirect(http.StatusFound, location)
	ginCtx.Abort()
}
