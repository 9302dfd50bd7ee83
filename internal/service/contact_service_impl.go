package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/folio/backend/internal/docstore"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/pkg/mailer"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	store      docstore.Store
	mailer     mailer.Mailer
	collection string // namespaced contact collection path
	recipient  string // operator address notifications go to
}

// NewContactService creates a ContactService backed by the given store and
// mailer. mailer may be nil or unconfigured; submissions are then saved
// without notification.
func NewContactService(store docstore.Store, m mailer.Mailer, collection, recipient string) ContactService {
	return &contactServiceImpl{store: store, mailer: m, collection: collection, recipient: recipient}
}

// Submit runs the submission pipeline: validate, append, notify.
// The store write is the durability boundary — a failed write means no
// notification attempt, and a failed notification never undoes the write.
// Every external call is attempted exactly once.
func (s *contactServiceImpl) Submit(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome {
	if !sub.Valid() {
		return model.OutcomeInvalidInput
	}

	if s.store == nil {
		slog.Error("contact: document store not initialized")
		return model.OutcomePersistenceFailed
	}

	id, err := s.store.Append(ctx, s.collection, model.Document{
		"name":    sub.Name,
		"email":   sub.Email,
		"message": sub.Message,
	})
	if err != nil {
		slog.Error("contact: store append failed", "error", err)
		return model.OutcomePersistenceFailed
	}

	if s.mailer == nil || !s.mailer.Configured() {
		slog.Info("contact: saved, notification skipped (mail transport not configured)", "id", id)
		return model.OutcomeSavedNoNotification
	}

	msg := notificationMessage(sub, s.collection, id, s.recipient, time.Now().UTC())
	if err := s.mailer.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrUnauthorized) {
			// Credential fault, not a transport fault. Same outcome either way.
			slog.Error("contact: notification rejected, check mail credentials", "id", id, "error", err)
		} else {
			slog.Error("contact: notification send failed", "id", id, "error", err)
		}
		return model.OutcomeSavedNotificationFailed
	}

	slog.Info("contact: saved and operator notified", "id", id)
	return model.OutcomeSavedAndNotified
}

// List returns all stored contact messages.
func (s *contactServiceImpl) List(ctx context.Context) ([]model.Document, error) {
	if s.store == nil {
		return nil, docstore.ErrUnavailable
	}
	return s.store.List(ctx, s.collection)
}

// notificationMessage formats the operator email for one submission.
// Line breaks in the message body become <br> for the HTML medium, and the
// mail points at where the full record lives in the store.
func notificationMessage(sub model.ContactSubmission, collection, id, recipient string, receivedAt time.Time) mailer.Message {
	var b strings.Builder
	b.WriteString("New contact form submission<br><br>")
	b.WriteString("Name: " + sub.Name + "<br>")
	b.WriteString("Email: " + sub.Email + "<br><br>")
	b.WriteString("Message:<br>")
	b.WriteString(strings.ReplaceAll(sub.Message, "\n", "<br>"))
	b.WriteString("<br><br>")
	b.WriteString("Received: " + receivedAt.Format(time.RFC1123) + "<br>")
	b.WriteString("Record: " + collection + "/" + id)

	return mailer.Message{
		To:      recipient,
		Subject: "New contact form submission from " + sub.Name,
		HTML:    b.String(),
	}
}
