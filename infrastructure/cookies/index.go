package cookies

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie names used across the flow. Their values are opaque to the browser;
// only the step-up credential is ever interpreted server-side.
const (
	// PrimarySession holds the provider-issued primary session token, set
	// when a magic link is consumed.
	PrimarySession = "vg_session"
	// PhoneChallenge holds the pending OTP challenge id. Single-use: it is
	// cleared the moment a code verifies against it.
	PhoneChallenge = "vg_challenge"
	// StepUp holds the signed step-up credential the route gate trusts.
	StepUp = "vg_stepup"
)

type policy struct {
	maxAge int
	path   string
}

// Attribute policy is fixed per cookie kind and not caller-configurable, so
// no call site can accidentally weaken it.
var policies = map[string]policy{
	PrimarySession: {maxAge: 60 * 60, path: "/"},
	PhoneChallenge: {maxAge: 15 * 60, path: "/"},
	StepUp:         {maxAge: 60 * 60, path: "/"},
}

// CookieStore writes and reads the flow's cookies against the current
// request/response pair. HttpOnly is unconditional; Secure follows the
// deployment transport.
type CookieStore struct {
	domain string
	secure bool
}

func NewCookieStore(domain string, secure bool) *CookieStore {
	return &CookieStore{
		domain: domain,
		secure: secure,
	}
}

func (cs *CookieStore) Write(ctx *gin.Context, name string, value string) error {
	cookiePolicy, known := policies[name]
	if !known {
		return fmt.Errorf("refusing to write unmanaged cookie %q", name)
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, value, cookiePolicy.maxAge, cookiePolicy.path, cs.domain, cs.secure, true)
	return nil
}

// Read returns nil when the cookie is absent or empty.
func (cs *CookieStore) Read(ctx *gin.Context, name string) *string {
	value, err := ctx.Cookie(name)
	if err != nil || value == "" {
		return nil
	}
	return &value
}

// Clear expires the cookie on the response being built.
func (cs *CookieStore) Clear(ctx *gin.Context, name string) {
	cookiePolicy, known := policies[name]
	if !known {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, "", -1, cookiePolicy.path, cs.domain, cs.secure, true)
}
