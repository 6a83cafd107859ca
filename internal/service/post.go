package service

import (
	"context"
	"errors"
	"strings"

	"go-blog/internal/model"
	"go-blog/internal/repository"
)

// PostService implements the post lifecycle. Mutations require an
// authenticated identity; reads are public.
type PostService struct {
	posts PostStore
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts}
}

// Create persists a new post attributed to the authenticated user's
// username. Title is checked for uniqueness first, then content; a hit
// on either silently re-shows the create view with no error surfaced.
// A successful
// create also lands back on the create view. The timestamp is assigned
// by the store at insert time.
func (s *PostService) Create(ctx context.Context, author, title, content string) (View, error) {
	if strings.TrimSpace(author) == "" {
		return View{}, ErrUnauthenticated
	}

	if _, err := s.posts.FindByTitle(ctx, title); err == nil {
		return NewView(ViewCreate, ""), nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return View{}, err
	}
	if _, err := s.posts.FindByContent(ctx, content); err == nil {
		return NewView(ViewCreate, ""), nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return View{}, err
	}

	p := &model.Post{Title: title, Content: content, Author: author}
	if err := s.posts.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return NewView(ViewCreate, ""), nil
		}
		return View{}, err
	}
	return NewView(ViewCreate, ""), nil
}

// Update overwrites title and content of an existing post
// unconditionally; unlike Create, no uniqueness pre-check runs here.
// An absent id yields repository.ErrNotFound.
func (s *PostService) Update(ctx context.Context, id uint64, title, content string) (View, error) {
	if err := s.posts.Update(ctx, id, title, content); err != nil {
		return View{}, err
	}
	return NewView(ViewHome, "Your changes have been saved."), nil
}

// Delete removes a post by id. An absent id yields
// repository.ErrNotFound, so deleting the same post twice fails the
// second time with store state unchanged.
func (s *PostService) Delete(ctx context.Context, id uint64) (View, error) {
	if err := s.posts.Delete(ctx, id); err != nil {
		return View{}, err
	}
	return NewView(ViewHome, "That article has been deleted!"), nil
}

// Get returns a single post for the blog page. An unknown id yields
// repository.ErrNotFound, aligned with Update and Delete.
func (s *PostService) Get(ctx context.Context, id uint64) (model.Post, View, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return model.Post{}, View{}, err
	}
	return p, NewView(ViewBlog, ""), nil
}

// List returns all posts in insertion order for the home page.
func (s *PostService) List(ctx context.Context) ([]model.Post, View, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, View{}, err
	}
	return posts, NewView(ViewHome, ""), nil
}
