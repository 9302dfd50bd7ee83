package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome
	listFunc   func(ctx context.Context) ([]model.Document, error)
}

func (m *mockContactService) Submit(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return model.OutcomeSavedAndNotified
}

func (m *mockContactService) List(ctx context.Context) ([]model.Document, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func submitReq(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_ForwardsFields(t *testing.T) {
	var captured model.ContactSubmission
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome {
			captured = sub
			return model.OutcomeSavedAndNotified
		},
	}
	h := NewContactHandler(mock, "")

	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(`{"name":"Ada","email":"ada@x.com","message":"Hello!"}`))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Ada" || captured.Email != "ada@x.com" || captured.Message != "Hello!" {
		t.Errorf("unexpected submission forwarded: %+v", captured)
	}
}

func TestContactHandler_Submit_OutcomeStatusMapping(t *testing.T) {
	cases := []struct {
		outcome model.SubmissionOutcome
		status  int
	}{
		{model.OutcomeInvalidInput, http.StatusBadRequest},
		{model.OutcomePersistenceFailed, http.StatusInternalServerError},
		{model.OutcomeSavedNoNotification, http.StatusOK},
		{model.OutcomeSavedAndNotified, http.StatusOK},
		{model.OutcomeSavedNotificationFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		mock := &mockContactService{
			submitFunc: func(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome {
				return tc.outcome
			},
		}
		h := NewContactHandler(mock, "")

		rec := httptest.NewRecorder()
		h.Submit(rec, submitReq(`{"name":"A","email":"a@x.com","message":"hi"}`))

		if rec.Code != tc.status {
			t.Errorf("outcome %v: expected %d, got %d", tc.outcome, tc.status, rec.Code)
		}
	}
}

// TestContactHandler_Submit_SavedButNotNotified verifies the saved/not-notified
// distinction is visible to the caller.
func TestContactHandler_Submit_SavedButNotNotified(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome {
			return model.OutcomeSavedNotificationFailed
		},
	}
	h := NewContactHandler(mock, "")

	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(`{"name":"A","email":"a@x.com","message":"hi"}`))

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp["error"], "saved") {
		t.Errorf("expected error message to note the record was saved, got %q", resp["error"])
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, "")

	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq("{bad json"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_MessageTooLong(t *testing.T) {
	called := false
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, sub model.ContactSubmission) model.SubmissionOutcome {
			called = true
			return model.OutcomeSavedAndNotified
		},
	}
	h := NewContactHandler(mock, "")

	body, _ := json.Marshal(map[string]string{
		"name":    "A",
		"email":   "a@x.com",
		"message": strings.Repeat("a", 5001),
	})
	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(string(body)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for message > 5000 chars, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for an oversized message")
	}
}

func TestContactHandler_Submit_ContentTypeJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, "")

	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(`{"name":"A","email":"a@x.com","message":"hi"}`))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %q", ct)
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/contacts tests
// ---------------------------------------------------------------------------

func adminReq(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminContacts_NoToken_Returns401(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, "secret")

	rec := httptest.NewRecorder()
	h.AdminList(rec, adminReq(""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAdminContacts_WrongToken_Returns401(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, "secret")

	rec := httptest.NewRecorder()
	h.AdminList(rec, adminReq("not-the-secret"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", rec.Code)
	}
}

func TestAdminContacts_DisabledWithoutConfiguredToken(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, "")

	rec := httptest.NewRecorder()
	h.AdminList(rec, adminReq(""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when no token configured, got %d", rec.Code)
	}
}

func TestAdminContacts_Success(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]model.Document, error) {
			return []model.Document{
				{"id": "1", "name": "Ada", "email": "ada@x.com", "message": "Hi"},
				{"id": "2", "name": "Grace", "email": "g@x.com", "message": "Hello"},
			}, nil
		},
	}
	h := NewContactHandler(mock, "secret")

	rec := httptest.NewRecorder()
	h.AdminList(rec, adminReq("secret"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Messages []model.Document `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(resp.Messages))
	}
}

func TestAdminContacts_EmptyList_ReturnsArray(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]model.Document, error) {
			return nil, nil
		},
	}
	h := NewContactHandler(mock, "secret")

	rec := httptest.NewRecorder()
	h.AdminList(rec, adminReq("secret"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"messages":[]`) {
		t.Errorf("expected empty array, not null — body: %s", rec.Body.String())
	}
}

func TestAdminContacts_ServiceError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]model.Document, error) {
			return nil, errors.New("store unreachable")
		},
	}
	h := NewContactHandler(mock, "secret")

	rec := httptest.NewRecorder()
	h.AdminList(rec, adminReq("secret"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}
