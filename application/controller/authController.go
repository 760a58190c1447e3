package controller

import (
	"errors"
	"net/http"

	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/constants"
	"valuegate.jvcp.co/application/controller/dto"
	"valuegate.jvcp.co/application/interfaces"
	auth_usecases "valuegate.jvcp.co/application/usecases/auth"
	"valuegate.jvcp.co/application/utils"
	server_response "valuegate.jvcp.co/infrastructure/serverResponse"
	"valuegate.jvcp.co/infrastructure/validator"
	"github.com/gin-gonic/gin"
)

// AuthController exposes the four flow transitions over HTTP. Programmatic
// steps answer JSON; the browser-facing link consumption answers redirects.
type AuthController struct {
	Orchestrator    *auth_usecases.AuthOrchestrator
	EntryPointURL   string
	SecondFactorURL string
}

func (ac *AuthController) RequestMagicLink(ctx *interfaces.ApplicationContext[dto.RequestMagicLinkDTO]) {
	if validationErrs := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErrs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErrs)
		return
	}
	ginCtx, ok := ginContext(ctx.Ctx)
	if !ok {
		return
	}
	requestID, err := ac.Orchestrator.RequestMagicLink(ginCtx.Request.Context(), ctx.Body.Email)
	if err != nil {
		ac.respondWithFlowError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, true, "", map[string]any{
		"requestId": requestID,
	})
}

func (ac *AuthController) ConsumeMagicLink(ctx *interfaces.ApplicationContext[any], token string) {
	ginCtx, ok := ginContext(ctx.Ctx)
	if !ok {
		return
	}
	err := ac.Orchestrator.ConsumeMagicLink(ginCtx, token)
	switch {
	case err == nil:
		server_response.Responder.Redirect(ctx.Ctx, ac.SecondFactorURL)
	case errors.Is(err, auth_usecases.ErrMissingToken):
		server_response.Responder.Redirect(ctx.Ctx, utils.RedirectWithReason(ac.EntryPointURL, constants.REASON_MISSING_TOKEN))
	default:
		server_response.Responder.Redirect(ctx.Ctx, utils.RedirectWithReason(ac.EntryPointURL, constants.REASON_AUTH_FAILED))
	}
}

func (ac *AuthController) RequestOtp(ctx *interfaces.ApplicationContext[dto.RequestOtpDTO]) {
	if validationErrs := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErrs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErrs)
		return
	}
	ginCtx, ok := ginContext(ctx.Ctx)
	if !ok {
		return
	}
	if err := ac.Orchestrator.RequestOtp(ginCtx, ctx.Body.Phone); err != nil {
		ac.respondWithFlowError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, true, "", nil)
}

func (ac *AuthController) ConsumeOtp(ctx *interfaces.ApplicationContext[dto.ConsumeOtpDTO]) {
	if validationErrs := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErrs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErrs)
		return
	}
	ginCtx, ok := ginContext(ctx.Ctx)
	if !ok {
		return
	}
	if err := ac.Orchestrator.ConsumeOtp(ginCtx, ctx.Body.Code); err != nil {
		ac.respondWithFlowError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, true, "", nil)
}

func (ac *AuthController) respondWithFlowError(ctx interface{}, err error) {
	switch {
	case errors.Is(err, auth_usecases.ErrInvalidInput):
		apperrors.ClientError(ctx, "invalid input")
	case errors.Is(err, auth_usecases.ErrInvalidPhone):
		apperrors.ClientError(ctx, "invalid phone number")
	case errors.Is(err, auth_usecases.ErrNoActiveChallenge):
		apperrors.ClientError(ctx, "code expired, request a new one")
	case errors.Is(err, auth_usecases.ErrInvalidCode):
		apperrors.ClientError(ctx, "Invalid code")
	case errors.Is(err, auth_usecases.ErrProviderUnavailable):
		apperrors.ExternalDependencyError(ctx, "identity provider", err)
	default:
		apperrors.FatalServerError(ctx, err)
	}
}

func ginContext(ctx interface{}) (*gin.Context, bool) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		apperrors.FatalServerError(ctx, errors.New("controller received a non-gin context"))
		return nil, false
	}
	return ginCtx, true
}
