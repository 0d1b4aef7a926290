package utils

import (
	"net/http"
	"strings"

	"folio/globals"
)

// --- Tag Normalization ---

// SplitTags turns a comma-separated string into a []string, trimming
// whitespace around each element. Order is preserved and duplicates are
// kept; empty elements are dropped.
func SplitTags(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// --- Request Context Helpers ---

func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}
