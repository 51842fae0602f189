package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxDetailBytes caps how much of a non-JSON error body is kept.
const maxDetailBytes = 2048

// FieldIssue is a server-side validation failure tied to an input location.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError is a non-success answer from the service. Status 200 with a
// rejected compute result is reported the same way.
type APIError struct {
	Status int          `json:"status"`
	Detail string       `json:"detail,omitempty"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if e == nil {
		return "service: <nil>"
	}
	if e.Detail == "" {
		return fmt.Sprintf("service: status %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("service: status %d: %s", e.Status, e.Detail)
}

// decodeAPIError reads the detail out of an error body. It understands
// {"detail": "..."}, validation lists of the form
// {"detail": [{"loc": [...], "msg": "..."}]}, {"message": "..."} and the
// service's own Errors/ValidationResult payloads. Anything else is kept as
// trimmed text.
func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return apiErr
	}

	var payload map[string]any
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal([]byte(trimmed), &payload) == nil {
		switch detail := payload["detail"].(type) {
		case string:
			apiErr.Detail = strings.TrimSpace(detail)
			return apiErr
		case []any:
			apiErr.Fields = fieldIssues(detail)
			apiErr.Detail = joinIssues(apiErr.Fields)
			return apiErr
		}
		if msg, ok := payload["message"].(string); ok && strings.TrimSpace(msg) != "" {
			apiErr.Detail = strings.TrimSpace(msg)
			return apiErr
		}
		if msg := ErrorMessage(payload); msg != UnknownErrorMessage {
			apiErr.Detail = msg
			return apiErr
		}
	}

	if len(trimmed) > maxDetailBytes {
		cut := maxDetailBytes
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		trimmed = trimmed[:cut]
	}
	apiErr.Detail = trimmed
	return apiErr
}

func fieldIssues(items []any) []FieldIssue {
	var out []FieldIssue
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		msg, _ := obj["msg"].(string)
		issue := FieldIssue{Message: strings.TrimSpace(msg)}
		if loc, ok := obj["loc"].([]any); ok {
			segments := make([]string, 0, len(loc))
			for _, part := range loc {
				switch v := part.(type) {
				case string:
					segments = append(segments, v)
				case float64:
					segments = append(segments, strconv.Itoa(int(v)))
				}
			}
			issue.Path = strings.Join(segments, ".")
		}
		if issue.Message == "" && issue.Path == "" {
			continue
		}
		out = append(out, issue)
	}
	return out
}

func joinIssues(issues []FieldIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		switch {
		case issue.Path == "":
			parts = append(parts, issue.Message)
		case issue.Message == "":
			parts = append(parts, issue.Path)
		default:
			parts = append(parts, issue.Path+": "+issue.Message)
		}
	}
	return strings.Join(parts, " / ")
}
