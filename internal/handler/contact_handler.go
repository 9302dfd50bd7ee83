package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
	adminToken     string
}

// NewContactHandler creates a ContactHandler with the given service.
// An empty adminToken disables the admin listing.
func NewContactHandler(contactService service.ContactService, adminToken string) *ContactHandler {
	return &ContactHandler{contactService: contactService, adminToken: adminToken}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email and message are all required; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message_too_long"})
		return
	}

	outcome := h.contactService.Submit(r.Context(), model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	switch outcome {
	case model.OutcomeInvalidInput:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "name, email and message are required",
		})
	case model.OutcomePersistenceFailed:
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to save message",
		})
	case model.OutcomeSavedNoNotification:
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "message saved (notification skipped: mail transport not configured)",
		})
	case model.OutcomeSavedAndNotified:
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "message saved",
		})
	case model.OutcomeSavedNotificationFailed:
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "message was saved but the notification could not be sent",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "unexpected outcome",
		})
	}
}

// adminListResponse is the JSON response for GET /api/admin/contacts.
type adminListResponse struct {
	Messages []model.Document `json:"messages"`
}

// AdminList handles GET /api/admin/contacts. Guarded by a static bearer
// token; the route is disabled when no token is configured.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	messages, err := h.contactService.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []model.Document{}
	}

	writeJSON(w, http.StatusOK, adminListResponse{Messages: messages})
}

func (h *ContactHandler) authorized(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.adminToken
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
