package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendEmailMissingFields(t *testing.T) {
	cases := []string{
		`{}`,
		`{"name":"Ada"}`,
		`{"name":"Ada","email":"ada@example.com","subject":"hi"}`,
		`{"name":"","email":"ada@example.com","subject":"hi","message":"hello"}`,
	}
	for _, body := range cases {
		r := httptest.NewRequest("POST", "/api/contact/send-email", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		SendEmail(w, r, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSendEmailInvalidJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/contact/send-email", strings.NewReader(`{"name":`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	SendEmail(w, r, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSendEmailUnconfiguredRelay(t *testing.T) {
	// no SMTP_HOST in the test environment, so a complete submission must
	// surface a relay failure instead of silently succeeding
	body := `{"name":"Ada","email":"ada@example.com","subject":"hi","message":"hello"}`
	r := httptest.NewRequest("POST", "/api/contact/send-email", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	SendEmail(w, r, nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
