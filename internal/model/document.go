package model

// Document is a schema-less record from the document store. The portfolio
// collection is written by an external publisher, so its shape is not owned
// by this system; fields are an open map rather than a fixed struct.
type Document map[string]any

// ContactSubmission is the payload of a contact-form submission.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Valid reports whether every required field is present and non-empty.
// Email presence only — no format validation is performed here.
func (s ContactSubmission) Valid() bool {
	return s.Name != "" && s.Email != "" && s.Message != ""
}

// SubmissionOutcome classifies the result of a contact submission,
// independent of the HTTP status it is eventually mapped to.
type SubmissionOutcome int

const (
	// OutcomeInvalidInput: a required field was missing or empty; nothing
	// was stored and no notification was attempted.
	OutcomeInvalidInput SubmissionOutcome = iota
	// OutcomePersistenceFailed: the store write failed; no notification
	// was attempted.
	OutcomePersistenceFailed
	// OutcomeSavedNoNotification: the message was stored; no mail transport
	// is configured, so notification was skipped. Success class.
	OutcomeSavedNoNotification
	// OutcomeSavedAndNotified: the message was stored and the operator
	// notification was sent.
	OutcomeSavedAndNotified
	// OutcomeSavedNotificationFailed: the message was stored durably, but
	// the operator notification could not be sent.
	OutcomeSavedNotificationFailed
)

// String returns a short identifier for logging.
func (o SubmissionOutcome) String() string {
	switch o {
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomePersistenceFailed:
		return "persistence_failed"
	case OutcomeSavedNoNotification:
		return "saved_no_notification"
	case OutcomeSavedAndNotified:
		return "saved_and_notified"
	case OutcomeSavedNotificationFailed:
		return "saved_notification_failed"
	default:
		return "unknown"
	}
}
