package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-blog/internal/model"
	"go-blog/internal/queue"
)

// ContactPublisher forwards an accepted contact submission to the
// notification pipeline. queue.PublishContactReceived is the production
// implementation; tests substitute a capture function.
type ContactPublisher func(ctx context.Context, ev queue.ContactReceivedEvent) error

// ContactService accepts contact-form submissions. Messages are a
// write-only sink: stored, announced on the broker, never read back.
type ContactService struct {
	messages MessageStore
	publish  ContactPublisher
}

func NewContactService(messages MessageStore, publish ContactPublisher) *ContactService {
	return &ContactService{messages: messages, publish: publish}
}

// Submit persists the message and best-effort publishes a
// contact.received event. A broker failure is logged and swallowed;
// the visitor's submission succeeded the moment the row was written.
func (s *ContactService) Submit(ctx context.Context, sender, email, phone, message string) (View, error) {
	m := &model.Message{Sender: sender, Email: email, PhoneNumber: phone, Message: message}
	if err := s.messages.Create(ctx, m); err != nil {
		return View{}, err
	}

	if s.publish != nil {
		ev := queue.ContactReceivedEvent{
			MessageID:   m.ID,
			Sender:      m.Sender,
			Email:       m.Email,
			PhoneNumber: m.PhoneNumber,
			Message:     m.Message,
			ReceivedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publish(ctx, ev); err != nil {
			zap.L().Warn("contact event publish failed", zap.Error(err))
		}
	}
	return NewView(ViewHome, "Message sent successfully."), nil
}
