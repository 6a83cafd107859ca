package service

import (
	"context"
	"time"

	"go-blog/internal/model"
	"go-blog/internal/repository"
)

// In-memory stores standing in for the SQL repositories. They enforce
// the same unique constraints the schema's indexes do, so the workflows
// see identical behavior.

type memUserStore struct {
	users  []model.User
	nextID uint64
}

func newMemUserStore() *memUserStore { return &memUserStore{nextID: 1} }

func (s *memUserStore) Create(_ context.Context, u *model.User) error {
	for _, e := range s.users {
		if e.FirstName == u.FirstName || e.LastName == u.LastName ||
			e.Username == u.Username || e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, *u)
	return nil
}

func (s *memUserStore) find(match func(model.User) bool) (model.User, error) {
	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	return s.find(func(u model.User) bool { return u.ID == id })
}
func (s *memUserStore) FindByUsername(_ context.Context, v string) (model.User, error) {
	return s.find(func(u model.User) bool { return u.Username == v })
}
func (s *memUserStore) FindByEmail(_ context.Context, v string) (model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == v })
}
func (s *memUserStore) FindByFirstName(_ context.Context, v string) (model.User, error) {
	return s.find(func(u model.User) bool { return u.FirstName == v })
}
func (s *memUserStore) FindByLastName(_ context.Context, v string) (model.User, error) {
	return s.find(func(u model.User) bool { return u.LastName == v })
}

type memPostStore struct {
	posts  []model.Post
	nextID uint64
}

func newMemPostStore() *memPostStore { return &memPostStore{nextID: 1} }

func (s *memPostStore) Create(_ context.Context, p *model.Post) error {
	for _, e := range s.posts {
		if e.Title == p.Title || e.Content == p.Content {
			return repository.ErrDuplicate
		}
	}
	p.ID = s.nextID
	s.nextID++
	if p.DatePosted.IsZero() {
		p.DatePosted = time.Now().UTC()
	}
	s.posts = append(s.posts, *p)
	return nil
}

func (s *memPostStore) find(match func(model.Post) bool) (model.Post, error) {
	for _, p := range s.posts {
		if match(p) {
			return p, nil
		}
	}
	return model.Post{}, repository.ErrNotFound
}

func (s *memPostStore) GetByID(_ context.Context, id uint64) (model.Post, error) {
	return s.find(func(p model.Post) bool { return p.ID == id })
}
func (s *memPostStore) FindByTitle(_ context.Context, v string) (model.Post, error) {
	return s.find(func(p model.Post) bool { return p.Title == v })
}
func (s *memPostStore) FindByContent(_ context.Context, v string) (model.Post, error) {
	return s.find(func(p model.Post) bool { return p.Content == v })
}

func (s *memPostStore) List(_ context.Context) ([]model.Post, error) {
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *memPostStore) Update(_ context.Context, id uint64, title, content string) error {
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Title = title
			s.posts[i].Content = content
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memPostStore) Delete(_ context.Context, id uint64) error {
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memSession struct {
	userID  uint64
	exp     time.Time
	revoked bool
}

type memSessionStore struct {
	sessions map[string]*memSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]*memSession{}}
}

func (s *memSessionStore) Store(_ context.Context, userID uint64, hash string, exp time.Time) error {
	s.sessions[hash] = &memSession{userID: userID, exp: exp}
	return nil
}

func (s *memSessionStore) Validate(_ context.Context, hash string) (uint64, error) {
	e, ok := s.sessions[hash]
	if !ok || e.revoked || time.Now().UTC().After(e.exp) {
		return 0, repository.ErrNotFound
	}
	return e.userID, nil
}

func (s *memSessionStore) Revoke(_ context.Context, hash string) error {
	if e, ok := s.sessions[hash]; ok {
		e.revoked = true
	}
	return nil
}

func (s *memSessionStore) RevokeAllForUser(_ context.Context, userID uint64) error {
	for _, e := range s.sessions {
		if e.userID == userID {
			e.revoked = true
		}
	}
	return nil
}

type memMessageStore struct {
	messages []model.Message
	nextID   uint64
}

func newMemMessageStore() *memMessageStore { return &memMessageStore{nextID: 1} }

func (s *memMessageStore) Create(_ context.Context, m *model.Message) error {
	m.ID = s.nextID
	s.nextID++
	s.messages = append(s.messages, *m)
	return nil
}
