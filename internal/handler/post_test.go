package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-blog/internal/model"
	"go-blog/internal/repository"
	"go-blog/internal/service"
)

// stubPostStore serves a fixed set of posts keyed by id. Only the
// read path matters for the form handlers under test.
type stubPostStore struct {
	posts map[uint64]model.Post
}

func (s *stubPostStore) Create(ctx context.Context, p *model.Post) error { return nil }

func (s *stubPostStore) GetByID(ctx context.Context, id uint64) (model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return model.Post{}, repository.ErrNotFound
	}
	return p, nil
}

func (s *stubPostStore) FindByTitle(ctx context.Context, title string) (model.Post, error) {
	return model.Post{}, repository.ErrNotFound
}

func (s *stubPostStore) FindByContent(ctx context.Context, content string) (model.Post, error) {
	return model.Post{}, repository.ErrNotFound
}

func (s *stubPostStore) List(ctx context.Context) ([]model.Post, error) { return nil, nil }

func (s *stubPostStore) Update(ctx context.Context, id uint64, title, content string) error {
	return nil
}

func (s *stubPostStore) Delete(ctx context.Context, id uint64) error { return nil }

func TestUpdateFormLoadsPost(t *testing.T) {
	store := &stubPostStore{posts: map[uint64]model.Post{
		7: {ID: 7, Title: "Hello", Content: "World", Author: "ann", DatePosted: time.Now().UTC()},
	}}
	h := NewPostHandler(service.NewPostService(store))

	e := echo.New()
	e.GET("/update/:id", h.UpdateForm)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/update/7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"view":"update"`)
	assert.Contains(t, rec.Body.String(), `"title":"Hello"`)
	assert.Contains(t, rec.Body.String(), `"content":"World"`)
}

func TestUpdateFormUnknownIDIs404(t *testing.T) {
	h := NewPostHandler(service.NewPostService(&stubPostStore{posts: map[uint64]model.Post{}}))

	e := echo.New()
	e.GET("/update/:id", h.UpdateForm)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/update/99", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
