package auth_usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"valuegate.jvcp.co/application/constants"
	"valuegate.jvcp.co/application/utils"
	"valuegate.jvcp.co/infrastructure/auth"
	"valuegate.jvcp.co/infrastructure/cookies"
	"valuegate.jvcp.co/infrastructure/identity"
	"valuegate.jvcp.co/infrastructure/logger"
	"valuegate.jvcp.co/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// AuthOrchestrator drives the two-factor flow: magic link first, SMS code
// second. Each transition is a single stateless request; everything the next
// transition needs travels in cookies, so two concurrent requests never
// share in-process state. Cookies are only written after the provider call
// they depend on has succeeded.
type AuthOrchestrator struct {
	Provider  identity.Provider
	Signer    *auth.Signer
	Cookies   *cookies.CookieStore
	AccessLog telemetry.AccessLog

	// MagicLinkConsumeURL is where the emailed link lands: the public URL
	// of the link-consumption endpoint. Both the login and signup redirect
	// targets point here.
	MagicLinkConsumeURL string

	// BindChallengeToSession forwards the primary session token to the
	// provider on OTP send and verify, so the challenge elevates the
	// existing identity instead of creating a detached one. On by default;
	// turning it off enables the provider-driven login-or-create fallback.
	BindChallengeToSession bool
}

// RequestMagicLink asks the provider to email a single-use login link. No
// cookie changes and nothing the route gate can see changes; the returned
// request id exists for observability only.
func (o *AuthOrchestrator) RequestMagicLink(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidInput
	}
	requestID, err := o.Provider.SendMagicLink(ctx, email, o.MagicLinkConsumeURL, o.MagicLinkConsumeURL)
	if err != nil {
		logger.Error("magic link request failed", logger.LoggerOptions{
			Key:  "email",
			Data: logger.Redact(email),
		})
		return "", ErrProviderUnavailable
	}
	o.AccessLog.Record(constants.EVENT_LINK_REQUESTED, map[string]any{
		"email":     email,
		"requestId": requestID,
	})
	return requestID, nil
}

// ConsumeMagicLink exchanges the emailed token for a primary session and
// stores it in the session cookie. Any provider failure leaves the client
// anonymous: no cookie is written on an error path.
func (o *AuthOrchestrator) ConsumeMagicLink(ctx *gin.Context, token string) error {
	if token == "" {
		return ErrMissingToken
	}
	session, err := o.Provider.AuthenticateMagicLink(ctx.Request.Context(), token, constants.PRIMARY_SESSION_TTL_MINUTES)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			logger.Warning("magic link token rejected by the identity provider")
		} else {
			logger.Error("magic link authentication failed upstream")
		}
		return ErrAuthenticationFailed
	}
	if err := o.Cookies.Write(ctx, cookies.PrimarySession, session.SessionToken); err != nil {
		return fmt.Errorf("writing primary session cookie: %w", err)
	}
	o.AccessLog.Record(constants.EVENT_PRIMARY_AUTHENTICATED, map[string]any{
		"subjectId": session.SubjectID,
	})
	return nil
}

// RequestOtp texts a code to the phone number and stores the resulting
// challenge id in the short-lived challenge cookie. Each call overwrites the
// previous challenge; only the newest ticket counts.
func (o *AuthOrchestrator) RequestOtp(ctx *gin.Context, rawPhone string) error {
	phone, err := utils.NormalizePhoneNumber(rawPhone)
	if err != nil {
		return ErrInvalidPhone
	}
	var existingSession *string
	if o.BindChallengeToSession {
		existingSession = o.Cookies.Read(ctx, cookies.PrimarySession)
	}
	if existingSession == nil {
		logger.Warning("otp requested without a primary session, challenge will not be bound to an identity", logger.LoggerOptions{
			Key:  "phone",
			Data: logger.Redact(phone),
		})
	}
	challengeID, err := o.Provider.SendOtp(ctx.Request.Context(), phone, existingSession)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return ErrInvalidPhone
		}
		return ErrProviderUnavailable
	}
	if err := o.Cookies.Write(ctx, cookies.PhoneChallenge, challengeID); err != nil {
		return fmt.Errorf("writing phone challenge cookie: %w", err)
	}
	o.AccessLog.Record(constants.EVENT_OTP_REQUESTED, map[string]any{
		"phone": phone,
		"bound": existingSession != nil,
	})
	return nil
}

// ConsumeOtp verifies the code against the pending challenge. On success it
// mints the step-up credential, refreshes the primary session with the
// superseding one the provider returned and invalidates the challenge
// ticket, all in the same response. On a wrong code the ticket survives so
// the user can retry; provider-side replay rejection lands here too.
func (o *AuthOrchestrator) ConsumeOtp(ctx *gin.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrInvalidInput
	}
	challengeID := o.Cookies.Read(ctx, cookies.PhoneChallenge)
	if challengeID == nil {
		return ErrNoActiveChallenge
	}
	var existingSession *string
	if o.BindChallengeToSession {
		existingSession = o.Cookies.Read(ctx, cookies.PrimarySession)
	}
	session, err := o.Provider.AuthenticateOtp(ctx.Request.Context(), *challengeID, code, existingSession, constants.PRIMARY_SESSION_TTL_MINUTES)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return ErrInvalidCode
		}
		return ErrProviderUnavailable
	}
	credential, err := o.Signer.Issue(session.SubjectID, true, constants.STEP_UP_CREDENTIAL_TTL)
	if err != nil {
		return fmt.Errorf("issuing step-up credential: %w", err)
	}
	if err := o.Cookies.Write(ctx, cookies.PrimarySession, session.SessionToken); err != nil {
		return fmt.Errorf("refreshing primary session cookie: %w", err)
	}
	if err := o.Cookies.Write(ctx, cookies.StepUp, credential); err != nil {
		return fmt.Errorf("writing step-up cookie: %w", err)
	}
	o.Cookies.Clear(ctx, cookies.PhoneChallenge)
	o.AccessLog.Record(constants.EVENT_STEP_UP_COMPLETE, map[string]any{
		"subjectId": session.SubjectID,
	})
	return nil
}
