package repository

import (
	"context"
	"database/sql"

	"go-blog/internal/model"
)

// MessageRepo persists contact-form submissions. Messages are never
// read back by the application, so this repository only inserts.
type MessageRepo struct{ DB *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{DB: db} }

// Create inserts a contact message and populates its ID.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO messages (sender, email, phone_number, message) VALUES (?,?,?,?)",
		m.Sender, m.Email, m.PhoneNumber, m.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}
