package middleware // reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-blog/internal/model"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// userContextKey is where the resolved user is stored on the echo
// context for downstream handlers.
const userContextKey = "current_user"

// IdentityResolver maps a raw session cookie value to the
// authenticated user. service.AuthService.ResolveIdentity satisfies it.
type IdentityResolver func(c echo.Context, rawToken string) (model.User, error)

// SessionAuth returns an Echo middleware that resolves the session
// cookie to an identity and injects the user into the request context.
// Requests without a valid session are sent to the login page; every
// route in the gated group therefore sees an Authenticated identity.
func SessionAuth(resolve IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			u, err := resolve(c, cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by SessionAuth. The boolean is
// false on routes outside the gated group or when resolution failed.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(userContextKey).(model.User)
	return u, ok
}
