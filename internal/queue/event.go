// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactReceivedEvent is published when a contact-form submission is
// accepted. It contains enough information for downstream consumers to
// log or notify without querying the primary database.
type ContactReceivedEvent struct {
	MessageID   uint64 `json:"message_id"`
	Sender      string `json:"sender"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
	ReceivedAt  string `json:"received_at"`
}
