package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"go-blog/internal/middleware"
	"go-blog/internal/service"
)

// AuthHandler bundles dependencies for the signup/login/logout endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// ----- DTOs -----

// Form field names match the signup/login templates; JSON aliases are
// accepted for API clients.
type signupReq struct {
	FirstName string `form:"firstname" json:"first_name"`
	LastName  string `form:"lastname" json:"last_name"`
	Email     string `form:"email" json:"email"`
	Username  string `form:"username" json:"username"`
	Gender    string `form:"gender" json:"gender"`
	Password  string `form:"password" json:"password"`
}

type loginReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// SignupForm handles GET /signup: hand the signup view to the renderer.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"view": service.ViewSignup})
}

// Signup handles POST /signup. A duplicate on any unique field lands
// back on the signup form with no stored record and no error detail;
// success redirects to the login form.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Auth.Signup(ctx, req.FirstName, req.LastName, req.Email, req.Username, req.Gender, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "signup failed"})
	}
	return redirectTo(c, v)
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"view": service.ViewLogin})
}

// Login handles POST /login. On success the session token is set as an
// HttpOnly cookie and the client lands on the home page; on any failure
// the login form is re-shown without revealing whether the username
// exists.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	tok, v, err := h.Auth.Login(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if tok.Token != "" {
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    tok.Token,
			Path:     "/",
			Expires:  tok.Exp,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return redirectTo(c, v)
}

// Logout handles GET /logout: revoke the session server-side, clear the
// cookie and land on the home page. A missing cookie is not an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	raw := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		raw = cookie.Value
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Auth.Logout(ctx, raw)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return redirectTo(c, v)
}

// Me is a simple protected endpoint returning the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":         u.ID,
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	})
}
