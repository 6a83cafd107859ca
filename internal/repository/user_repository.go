package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-blog/internal/model"
)

// UserRepo encapsulates all database queries related to users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,first_name,last_name,username,email,gender,password_hash,created_at"

// Create inserts a user and populates its ID. The password hash must
// already be computed by the caller; this layer never sees plaintext.
// A duplicate value on any of the unique columns yields ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (first_name, last_name, username, email, gender, password_hash) VALUES (?,?,?,?,?,?)",
		u.FirstName, u.LastName, u.Username, u.Email, u.Gender, u.PasswordHash)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
}

// FindByUsername fetches a user by login name.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1",
		strings.TrimSpace(username))
}

// FindByEmail fetches a user by normalized email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1",
		strings.ToLower(strings.TrimSpace(email)))
}

// FindByFirstName fetches a user by first name. The signup flow uses
// this (and FindByLastName) because first and last names are unique
// columns in this data model.
func (r *UserRepo) FindByFirstName(ctx context.Context, first string) (model.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE first_name=? LIMIT 1", first)
}

// FindByLastName fetches a user by last name.
func (r *UserRepo) FindByLastName(ctx context.Context, last string) (model.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE last_name=? LIMIT 1", last)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.Gender, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}
