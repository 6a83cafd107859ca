package router // package router defines how HTTP routes are registered for the app

import (
	"github.com/labstack/echo/v4"

	"go-blog/internal/handler"
	"go-blog/internal/middleware"
)

// Register wires every route of the application onto the provided Echo
// instance. Public pages (home, blog, about, contact, signup, login)
// require no session; the post mutations live in a group guarded by the
// session middleware, so an anonymous client is redirected to /login
// before any of those handlers run.
//
// cache is applied only to the read-only public pages; when Redis is
// unavailable it is a pass-through.
func Register(e *echo.Echo, a *handler.AuthHandler, p *handler.PostHandler,
	ct *handler.ContactHandler, resolve middleware.IdentityResolver,
	cache echo.MiddlewareFunc) {

	e.GET("/healthz", handler.Health)

	// Public pages. Home and the single-post page are cacheable.
	e.GET("/", p.Home, cache)
	e.GET("/blog/:id", p.GetPost, cache)
	e.GET("/about", p.About)

	e.GET("/contact", ct.ContactForm)
	e.POST("/contact", ct.Submit)

	e.GET("/signup", a.SignupForm)
	e.POST("/signup", a.Signup)
	e.GET("/login", a.LoginForm)
	e.POST("/login", a.Login)
	e.GET("/logout", a.Logout)

	// Mutating post routes require a live session.
	auth := e.Group("", middleware.SessionAuth(resolve))
	auth.GET("/create", p.CreateForm)
	auth.POST("/create", p.Create)
	auth.GET("/update/:id", p.UpdateForm)
	auth.POST("/update/:id", p.Update)
	auth.GET("/delete/:id", p.Delete) // delete is link-driven, hence GET
	auth.GET("/me", a.Me)
}
