package middlewares

import (
	"net/http"
	"strings"

	"valuegate.jvcp.co/application/constants"
	"valuegate.jvcp.co/application/utils"
	"valuegate.jvcp.co/infrastructure/auth"
	"valuegate.jvcp.co/infrastructure/cookies"
	"github.com/gin-gonic/gin"
)

// RouteGateMiddleware guards every request whose path falls under one of the
// protected prefixes. The step-up credential cookie is the only thing it
// trusts: absent, unverifiable, expired or missing the second-factor claim
// all end the same way, a redirect to the entry point. The gate never
// mutates flow state.
func RouteGateMiddleware(signer *auth.Signer, store *cookies.CookieStore, protectedPrefixes []string, entryPointURL string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !matchesProtectedPrefix(ctx.Request.URL.Path, protectedPrefixes) {
			ctx.Next()
			return
		}
		credential := store.Read(ctx, cookies.StepUp)
		if credential == nil {
			redirectToEntry(ctx, entryPointURL)
			return
		}
		claims, err := signer.Verify(*credential)
		if err != nil || !claims.SecondFactorSatisfied {
			redirectToEntry(ctx, entryPointURL)
			return
		}
		ctx.Set("SubjectID", claims.SubjectID)
		ctx.Next()
	}
}

func matchesProtectedPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func redirectToEntry(ctx *gin.Context, entryPointURL string) {
	ctx.Redirect(http.StatusFound, utils.RedirectWithReason(entryPointURL, constants.REASON_AUTH_REQUIRED))
	ctx.Abort()
}
