package handler // handler defines http handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"go-blog/internal/service"
)

// viewPaths maps the view names returned by the workflows onto routes.
// Form submissions answer with a 303 redirect to the page the workflow
// selected.
var viewPaths = map[string]string{
	service.ViewHome:    "/",
	service.ViewLogin:   "/login",
	service.ViewSignup:  "/signup",
	service.ViewCreate:  "/create",
	service.ViewContact: "/contact",
	service.ViewAbout:   "/about",
}

// redirectTo sends the client to the route of the selected view.
func redirectTo(c echo.Context, v service.View) error {
	path, ok := viewPaths[v.Name]
	if !ok {
		path = "/"
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// parseID parses the :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// reqContext bounds a handler's database work to five seconds.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
