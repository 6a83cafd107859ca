package model

import "time"

// Message is a contact-form submission persisted in the `messages`
// table. Messages are a write-only sink: nothing in the application
// reads them back, they exist for out-of-band follow-up.
type Message struct {
	ID          uint64    // messages.id
	Sender      string    // messages.sender
	Email       string    // messages.email
	PhoneNumber string    // messages.phone_number
	Message     string    // messages.message
	CreatedAt   time.Time // messages.created_at
}
