package controller

import (
	"net/http"

	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/constants"
	"valuegate.jvcp.co/application/interfaces"
	"valuegate.jvcp.co/application/services/valuation"
	server_response "valuegate.jvcp.co/infrastructure/serverResponse"
	"valuegate.jvcp.co/infrastructure/telemetry"
)

// ValuationController fronts the external valuation collaborator. Its routes
// sit behind the route gate; by the time a request lands here both factors
// have been verified.
type ValuationController struct {
	Valuation valuation.Service
	AccessLog telemetry.AccessLog
}

func (vc *ValuationController) Compute(ctx *interfaces.ApplicationContext[map[string]any]) {
	ginCtx, ok := ginContext(ctx.Ctx)
	if !ok {
		return
	}
	result, err := vc.Valuation.Compute(ginCtx.Request.Context(), *ctx.Body)
	if err != nil {
		apperrors.ExternalDependencyError(ctx.Ctx, "valuation service", err)
		return
	}
	fields := map[string]any{}
	for key, value := range *ctx.Body {
		fields[key] = value
	}
	if subjectID := ctx.GetContextData("SubjectID"); subjectID != nil {
		fields["subjectId"] = subjectID
	}
	vc.AccessLog.Record(constants.EVENT_VALUATION_RUN, fields)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, true, "", map[string]any{
		"result": result,
	})
}
