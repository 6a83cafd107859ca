package service

import (
	"context"
	"errors"
	"time"

	"go-blog/internal/model"
	"go-blog/internal/repository"
	"go-blog/internal/utils"
)

// AuthService implements the signup/login workflow and the session
// lifecycle. A client is Anonymous until Login succeeds; the returned
// session token is the durable reference the client presents (as a
// cookie) on subsequent requests, and Logout invalidates it server-side.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	secret   string
	ttl      time.Duration
	cost     int
}

func NewAuthService(users UserStore, sessions SessionStore, secret string, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{users: users, sessions: sessions, secret: secret, ttl: ttl, cost: bcryptCost}
}

// Signup creates a new account. Uniqueness is checked in a fixed order
// (first name, last name, username, email) and the first collision
// silently abandons the signup: the caller gets the signup view back
// with nothing stored and no error message. The check order determines
// which duplicate is "caught" when several fields collide at once.
// When every check passes the password is hashed and the user is
// persisted; a concurrent signup that slips past the pre-checks is
// still rejected by the unique indexes and treated the same silent way.
// There is no automatic login afterwards.
func (s *AuthService) Signup(ctx context.Context, first, last, email, username, gender, password string) (View, error) {
	checks := []struct {
		find  func(context.Context, string) (model.User, error)
		value string
	}{
		{s.users.FindByFirstName, first},
		{s.users.FindByLastName, last},
		{s.users.FindByUsername, username},
		{s.users.FindByEmail, email},
	}
	for _, c := range checks {
		_, err := c.find(ctx, c.value)
		if err == nil {
			return NewView(ViewSignup, ""), nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return View{}, err
		}
	}

	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return View{}, err
	}
	u := &model.User{
		FirstName:    first,
		LastName:     last,
		Username:     username,
		Email:        email,
		Gender:       gender,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent signup.
			return NewView(ViewSignup, ""), nil
		}
		return View{}, err
	}
	return NewView(ViewLogin, ""), nil
}

// Login verifies credentials and, on success, establishes a session:
// the returned token is a signed cookie value whose session id is also
// recorded server-side. An unknown username and a wrong password are
// indistinguishable to the caller: both re-show the login view with no
// session and no detail leaked.
func (s *AuthService) Login(ctx context.Context, username, password string) (utils.SessionToken, View, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return utils.SessionToken{}, NewView(ViewLogin, ""), nil
	}
	if err != nil {
		return utils.SessionToken{}, View{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return utils.SessionToken{}, NewView(ViewLogin, ""), nil
	}

	tok, err := utils.NewSessionToken(s.secret, u.ID, s.ttl)
	if err != nil {
		return utils.SessionToken{}, View{}, err
	}
	if err := s.sessions.Store(ctx, u.ID, utils.HashSessionID(tok.JTI), tok.Exp); err != nil {
		return utils.SessionToken{}, View{}, err
	}
	return tok, NewView(ViewHome, "You are now logged in."), nil
}

// Logout revokes the session referenced by the raw cookie value and
// returns the client to the home view. A missing or mangled cookie is
// not an error; the client simply ends up Anonymous either way.
func (s *AuthService) Logout(ctx context.Context, rawToken string) (View, error) {
	_, jti, err := utils.ParseSessionToken(s.secret, rawToken)
	if err != nil {
		return NewView(ViewHome, "You have been logged out."), nil
	}
	if err := s.sessions.Revoke(ctx, utils.HashSessionID(jti)); err != nil {
		return View{}, err
	}
	return NewView(ViewHome, "You have been logged out."), nil
}

// ResolveIdentity maps a presented session token to the authenticated
// User. It verifies the token signature and expiry, checks that the
// session id is still active server-side, and loads the user record.
// Any failure along the way yields ErrUnauthenticated: the caller is
// Anonymous.
func (s *AuthService) ResolveIdentity(ctx context.Context, rawToken string) (model.User, error) {
	userID, jti, err := utils.ParseSessionToken(s.secret, rawToken)
	if err != nil {
		return model.User{}, ErrUnauthenticated
	}
	owner, err := s.sessions.Validate(ctx, utils.HashSessionID(jti))
	if err != nil || owner != userID {
		return model.User{}, ErrUnauthenticated
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, ErrUnauthenticated
	}
	return u, nil
}
