package controller

import (
	"net/http"

	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/constants"
	"valuegate.jvcp.co/application/controller/dto"
	"valuegate.jvcp.co/application/interfaces"
	server_response "valuegate.jvcp.co/infrastructure/serverResponse"
	"valuegate.jvcp.co/infrastructure/telemetry"
	"valuegate.jvcp.co/infrastructure/useragent"
	"valuegate.jvcp.co/infrastructure/validator"
)

// TelemetryController accepts lead and valuation events from the front end
// and hands them to the best-effort sink. Recording never fails the request.
type TelemetryController struct {
	AccessLog telemetry.AccessLog
}

func (tc *TelemetryController) LogAccess(ctx *interfaces.ApplicationContext[dto.LogAccessDTO]) {
	if validationErrs := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErrs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErrs)
		return
	}
	parsedAgent := useragent.ParseUserAgent(ctx.UserAgent)
	fields := map[string]any{
		"email":     ctx.Body.Email,
		"ip":        ctx.ClientIP,
		"userAgent": ctx.UserAgent,
		"browser":   parsedAgent.Name,
		"os":        parsedAgent.OS,
		"device":    parsedAgent.Device,
		"bot":       parsedAgent.Bot,
	}
	putIfSet(fields, "phone", ctx.Body.Phone)
	putIfSet(fields, "approxCity", ctx.Body.ApproxCity)
	putIfSet(fields, "approxRegion", ctx.Body.ApproxRegion)
	putIfSet(fields, "approxCountry", ctx.Body.ApproxCountry)
	putIfSet(fields, "referrer", ctx.Body.Referrer)
	if ctx.Body.Lat != nil {
		fields["lat"] = *ctx.Body.Lat
	}
	if ctx.Body.Lon != nil {
		fields["lon"] = *ctx.Body.Lon
	}
	tc.AccessLog.Record(constants.EVENT_ACCESS_REQUEST, fields)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, true, "", nil)
}

func (tc *TelemetryController) LogValuation(ctx *interfaces.ApplicationContext[dto.LogValuationDTO]) {
	if validationErrs := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErrs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErrs)
		return
	}
	fields := map[string]any{
		"ebitda": ctx.Body.Ebitda,
	}
	putIfSet(fields, "email", ctx.Body.Email)
	putIfSet(fields, "industry", ctx.Body.Industry)
	putIfSet(fields, "bandLabel", ctx.Body.BandLabel)
	putIfSet(fields, "notes", ctx.Body.Notes)
	putFloatIfSet(fields, "debtPct", ctx.Body.DebtPct)
	putFloatIfSet(fields, "enterpriseValue", ctx.Body.EnterpriseValue)
	putFloatIfSet(fields, "expectedValuation", ctx.Body.ExpectedValuation)
	putFloatIfSet(fields, "expectedLow", ctx.Body.ExpectedLow)
	putFloatIfSet(fields, "expectedHigh", ctx.Body.ExpectedHigh)
	tc.AccessLog.Record(constants.EVENT_VALUATION_RUN, fields)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, true, "", nil)
}

func putIfSet(fields map[string]any, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}

func putFloatIfSet(fields map[string]any, key string, value *float64) {
	if value != nil {
		fields[key] = *value
	}
}
