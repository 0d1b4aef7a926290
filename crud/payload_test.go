package crud

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParsePayloadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/blogs", strings.NewReader(`{"title":"hi","featured":false}`))
	r.Header.Set("Content-Type", "application/json")

	p, err := ParsePayload(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"title", "featured"} {
		if _, ok := p.Values[key]; !ok {
			t.Errorf("sent key %s should be present", key)
		}
	}
	if _, ok := p.Values["category"]; ok {
		t.Error("unsent key reported as present")
	}
	if got, ok := p.Values["featured"].(bool); !ok || got {
		t.Errorf("featured = %v, want false", p.Values["featured"])
	}
}

func TestParsePayloadEmptyBody(t *testing.T) {
	r := httptest.NewRequest("PUT", "/api/blogs/abc", nil)
	p, err := ParsePayload(r)
	if err != nil {
		t.Fatalf("empty body must parse to an empty payload, got %v", err)
	}
	if len(p.Values) != 0 {
		t.Errorf("Values = %v, want empty", p.Values)
	}
}

func TestParsePayloadInvalidJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/blogs", strings.NewReader(`{"title":`))
	r.Header.Set("Content-Type", "application/json")
	if _, err := ParsePayload(r); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParsePayloadMultipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "hello")
	mw.WriteField("featured", "true")
	mw.Close()

	r := httptest.NewRequest("POST", "/api/blogs", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	p, err := ParsePayload(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Values["title"] != "hello" {
		t.Errorf("title = %v", p.Values["title"])
	}
	// multipart values arrive as strings; the patch builder coerces them
	if p.Values["featured"] != "true" {
		t.Errorf("featured = %v, want the raw form string", p.Values["featured"])
	}
	if p.Form == nil {
		t.Error("multipart payload should retain the parsed form")
	}
}
