package mailer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const sendGridBaseURL = "https://api.sendgrid.com"

// SendGridMailer sends mail via POST /v3/mail/send.
type SendGridMailer struct {
	client *resty.Client
	apiKey string
	sender string
}

// NewSendGrid creates a SendGridMailer. An empty apiKey yields a mailer that
// reports itself unconfigured and refuses to send.
func NewSendGrid(apiKey, sender string) *SendGridMailer {
	c := resty.New().
		SetBaseURL(sendGridBaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &SendGridMailer{client: c, apiKey: apiKey, sender: sender}
}

var _ Mailer = (*SendGridMailer)(nil)

// Configured reports whether an API key is present.
func (m *SendGridMailer) Configured() bool {
	return m.apiKey != ""
}

type sgAddress struct {
	Email string `json:"email"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMailRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// Send performs a single mail/send call. No retries.
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	if m.apiKey == "" {
		return ErrNotConfigured
	}

	body := sgMailRequest{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: msg.To}}}},
		From:             sgAddress{Email: m.sender},
		Subject:          msg.Subject,
		Content:          []sgContent{{Type: "text/html", Value: msg.HTML}},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(m.apiKey).
		SetBody(&body).
		Post("/v3/mail/send")
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", ErrUnauthorized, code, resp.String())
	case code >= 300:
		return fmt.Errorf("mailer: send: status %d: %s", code, resp.String())
	}
	return nil
}
