// Package mailer sends operator notification email through the SendGrid v3
// REST API using a resty client.
package mailer

import (
	"context"
	"errors"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer is the email dispatch gateway. Send performs exactly one attempt;
// callers decide what a failure means.
type Mailer interface {
	// Configured reports whether a transport credential is present.
	// Resolved from startup configuration, never from ambient lookups.
	Configured() bool

	Send(ctx context.Context, msg Message) error
}

// ErrNotConfigured is returned by Send when no API key is set.
var ErrNotConfigured = errors.New("mailer: not configured")

// ErrUnauthorized is returned when the mail API rejects the credential.
// Callers log this as a configuration fault rather than a transport fault;
// it carries no other behavioral difference.
var ErrUnauthorized = errors.New("mailer: unauthorized")
