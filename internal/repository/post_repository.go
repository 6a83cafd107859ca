package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-blog/internal/model"
)

// PostRepo encapsulates all database queries related to blog posts.
type PostRepo struct{ DB *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{DB: db} }

const postColumns = "id,title,content,author,date_posted"

// Create inserts a post and populates ID and DatePosted. The posting
// timestamp is assigned here, in UTC, and is immutable afterwards.
// Duplicate title or content yields ErrDuplicate.
func (r *PostRepo) Create(ctx context.Context, p *model.Post) error {
	if p.DatePosted.IsZero() {
		p.DatePosted = time.Now().UTC()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO posts (title, content, author, date_posted) VALUES (?,?,?,?)",
		p.Title, p.Content, p.Author, p.DatePosted)
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
	p.ID = uint64(id)
	return nil
}

// GetByID fetches a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id uint64) (model.Post, error) {
	return r.findOne(ctx, "SELECT "+postColumns+" FROM posts WHERE id=? LIMIT 1", id)
}

// FindByTitle fetches a post with the exact title.
func (r *PostRepo) FindByTitle(ctx context.Context, title string) (model.Post, error) {
	return r.findOne(ctx, "SELECT "+postColumns+" FROM posts WHERE title=? LIMIT 1", title)
}

// FindByContent fetches a post with the exact content.
func (r *PostRepo) FindByContent(ctx context.Context, content string) (model.Post, error) {
	return r.findOne(ctx, "SELECT "+postColumns+" FROM posts WHERE content=? LIMIT 1", content)
}

// List returns all posts in insertion order. The home page applies no
// explicit sort, so ascending id preserves insertion order.
func (r *PostRepo) List(ctx context.Context) ([]model.Post, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+postColumns+" FROM posts ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.DatePosted); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update overwrites title and content of an existing post. The update
// path deliberately skips the uniqueness pre-checks done at creation;
// only a clash with another row's unique index surfaces, as ErrDuplicate.
// No matching row yields ErrNotFound.
func (r *PostRepo) Update(ctx context.Context, id uint64, title, content string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE posts SET title=?, content=? WHERE id=?", title, content, id)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish "row absent" from "row unchanged": an update that
		// writes identical values affects zero rows on MySQL.
		var exists uint64
		err := r.DB.QueryRowContext(ctx, "SELECT id FROM posts WHERE id=? LIMIT 1", id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes a post by id. Deleting an absent id yields ErrNotFound,
// so a second delete of the same post reports failure without touching
// any other row.
func (r *PostRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM posts WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepo) findOne(ctx context.Context, query string, arg any) (model.Post, error) {
	var p model.Post
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.DatePosted)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, ErrNotFound
	}
	return p, err
}
