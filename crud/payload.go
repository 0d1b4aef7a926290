package crud

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Payload is the raw incoming request body, normalized so that the patch
// builder can ask "is this key present" regardless of transport encoding.
type Payload struct {
	Values map[string]any
	Form   *multipart.Form
}

const maxFormMemory = 12 << 20

// ParsePayload reads a JSON or multipart body. An empty body yields an
// empty payload, not an error: update-with-nothing is meaningful (it
// clears the image field).
func ParsePayload(r *http.Request) (*Payload, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, &ValidationError{msg: "Invalid form data"}
		}
		values := make(map[string]any, len(r.MultipartForm.Value))
		for key, vals := range r.MultipartForm.Value {
			if len(vals) > 0 {
				values[key] = vals[0]
			} else {
				values[key] = ""
			}
		}
		return &Payload{Values: values, Form: r.MultipartForm}, nil
	}

	values := map[string]any{}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			if errors.Is(err, io.EOF) {
				return &Payload{Values: map[string]any{}}, nil
			}
			return nil, &ValidationError{msg: "Invalid JSON body"}
		}
	}
	return &Payload{Values: values}, nil
}
