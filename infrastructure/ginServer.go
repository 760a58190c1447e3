package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/controller"
	"valuegate.jvcp.co/application/services/valuation"
	auth_usecases "valuegate.jvcp.co/application/usecases/auth"
	"valuegate.jvcp.co/infrastructure/auth"
	"valuegate.jvcp.co/infrastructure/cookies"
	"valuegate.jvcp.co/infrastructure/identity/stytch"
	"valuegate.jvcp.co/infrastructure/logger"
	middlewares "valuegate.jvcp.co/infrastructure/middleware"
	"valuegate.jvcp.co/infrastructure/ratelimit"
	routev1 "valuegate.jvcp.co/infrastructure/routes/ginRouter/web/v1"
	server_response "valuegate.jvcp.co/infrastructure/serverResponse"
	"valuegate.jvcp.co/infrastructure/telemetry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// StartServer wires every collaborator explicitly and runs the HTTP server.
// All clients are constructed here and injected downward; nothing below this
// function reaches for a process-wide service instance.
func StartServer() {
	logger.InitializeLogger()

	upstreamTimeout := upstreamTimeoutFromEnv()
	provider := stytch.NewService(
		os.Getenv("STYTCH_PROJECT_ID"),
		os.Getenv("STYTCH_SECRET"),
		os.Getenv("STYTCH_ENV"),
		upstreamTimeout,
	)
	signer, err := auth.NewSigner(os.Getenv("STEPUP_SIGNING_KEY"), os.Getenv("STEPUP_ISSUER"))
	if err != nil {
		panic(err)
	}
	cookieStore := cookies.NewCookieStore(os.Getenv("COOKIE_DOMAIN"), cookieSecure())

	var accessLog telemetry.AccessLog = telemetry.NoopAccessLog{}
	if webhookURL := os.Getenv("ACCESS_LOG_WEBHOOK_URL"); webhookURL != "" {
		accessLog = telemetry.NewWebhookAccessLog(webhookURL, upstreamTimeout)
	} else {
		logger.Warning("no access log collector configured, lead events will be dropped")
	}

	entryPointURL := envOr("ENTRY_POINT_URL", "/")
	orchestrator := &auth_usecases.AuthOrchestrator{
		Provider:               provider,
		Signer:                 signer,
		Cookies:                cookieStore,
		AccessLog:              accessLog,
		MagicLinkConsumeURL:    envOr("MAGIC_LINK_CONSUME_URL", "http://localhost:8080/api/v1/auth/link/consume"),
		BindChallengeToSession: os.Getenv("SECOND_FACTOR_BINDING") != "false",
	}

	authController := &controller.AuthController{
		Orchestrator:    orchestrator,
		EntryPointURL:   entryPointURL,
		SecondFactorURL: envOr("SECOND_FACTOR_URL", "/verify-phone"),
	}
	telemetryController := &controller.TelemetryController{
		AccessLog: accessLog,
	}
	valuationController := &controller.ValuationController{
		Valuation: valuation.NewRemoteService(envOr("VALUATION_SERVICE_URL", "http://localhost:8001"), upstreamTimeout),
		AccessLog: accessLog,
	}

	server := gin.Default()
	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(envOr("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())
	server.Use(middlewares.RequestIDMiddleware())

	protectedPrefixes := splitAndTrim(envOr("PROTECTED_PATH_PREFIXES", "/api/v1/valuation"))
	server.Use(middlewares.RouteGateMiddleware(signer, cookieStore, protectedPrefixes, entryPointURL))

	routerV1 := server.Group("/api/v1")
	{
		routev1.AuthRouter(routerV1, authController)
		routev1.TelemetryRouter(routerV1, telemetryController)
		routev1.ValuationRouter(routerV1, valuationController)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, true, "", map[string]any{
			"message": "pong!",
		})
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})

	port := envOr("PORT", "8080")
	logger.Info(fmt.Sprintf("server starting on port %s", port))
	server.Run(fmt.Sprintf(":%s", port))
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// cookieSecure is true whenever the deployment serves over encrypted
// transport; COOKIE_SECURE=false is a non-production escape hatch only.
func cookieSecure() bool {
	if value := os.Getenv("COOKIE_SECURE"); value != "" {
		return value != "false"
	}
	return os.Getenv("ENV") == "production"
}

func upstreamTimeoutFromEnv() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("PROVIDER_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
