package service

import (
	"context"
	"time"

	"go-blog/internal/model"
)

// The workflows depend on these narrow store interfaces rather than the
// concrete SQL repositories so tests can substitute in-memory fakes.
// The *Repo types in internal/repository satisfy them.

// UserStore is the slice of user persistence the auth workflows need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uint64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByFirstName(ctx context.Context, first string) (model.User, error)
	FindByLastName(ctx context.Context, last string) (model.User, error)
}

// PostStore covers the post lifecycle.
type PostStore interface {
	Create(ctx context.Context, p *model.Post) error
	GetByID(ctx context.Context, id uint64) (model.Post, error)
	FindByTitle(ctx context.Context, title string) (model.Post, error)
	FindByContent(ctx context.Context, content string) (model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Update(ctx context.Context, id uint64, title, content string) error
	Delete(ctx context.Context, id uint64) error
}

// MessageStore accepts contact submissions. Nothing reads them back.
type MessageStore interface {
	Create(ctx context.Context, m *model.Message) error
}

// SessionStore tracks the server-side half of login sessions.
type SessionStore interface {
	Store(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	Validate(ctx context.Context, tokenHash string) (uint64, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uint64) error
}
