package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"go-blog/internal/middleware"
	"go-blog/internal/model"
	"go-blog/internal/repository"
	"go-blog/internal/service"
)

// PostHandler exposes the public blog pages and the session-gated
// post mutations.
type PostHandler struct {
	Posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{Posts: posts}
}

// postReq mirrors the create/update form, where the content textarea is
// named "message".
type postReq struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"message" json:"content"`
}

// postResp is the public shape of a post.
type postResp struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	DatePosted time.Time `json:"date_posted"`
}

func toPostResp(p model.Post) postResp {
	return postResp{ID: p.ID, Title: p.Title, Content: p.Content, Author: p.Author, DatePosted: p.DatePosted}
}

// Home handles GET / and returns every post in insertion order.
func (h *PostHandler) Home(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	posts, v, err := h.Posts.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items := make([]postResp, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"view": v.Name, "items": items})
}

// GetPost handles GET /blog/:id. An unknown id is a 404, consistent
// with update and delete.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	p, v, err := h.Posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"view": v.Name, "post": toPostResp(p)})
}

// About handles GET /about.
func (h *PostHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"view": service.ViewAbout})
}

// CreateForm handles GET /create (session-gated).
func (h *PostHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"view": service.ViewCreate})
}

// Create handles POST /create. The post is attributed to the logged-in
// user's username. A duplicate title or content silently re-shows the
// create form; so does success.
func (h *PostHandler) Create(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Posts.Create(ctx, u.Username, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return redirectTo(c, v)
}

// UpdateForm handles GET /update/:id (session-gated): the edit form is
// pre-filled with the current post, so an unknown id is a 404 here too.
func (h *PostHandler) UpdateForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	p, _, err := h.Posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"view": service.ViewUpdate, "post": toPostResp(p)})
}

// Update handles POST /update/:id. Title and content are overwritten
// unconditionally; an unknown id is a 404.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Posts.Update(ctx, id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return redirectTo(c, v)
}

// Delete handles GET /delete/:id. Deletion is link-driven, hence GET.
// An unknown id is a 404; deleting twice fails the second time.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Posts.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return redirectTo(c, v)
}
