package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates the submission, persists it, and dispatches the
	// operator notification when a mail transport is configured. The
	// returned outcome classifies how far the pipeline got; failures are
	// absorbed and logged here, never propagated as errors.
	Submit(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome

	// List returns all stored contact messages, newest first.
	List(ctx context.Context) ([]model.Document, error)
}
