package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// StatusOK is the status string the service reports on success.
const StatusOK = "OK"

// Message is one entry of a service validation list.
type Message struct {
	Message string `json:"Message"`
}

// ValidationResult is the service's check of one input sheet.
type ValidationResult struct {
	IsValid    bool      `json:"IsValid"`
	HasWarning bool      `json:"HasWarning"`
	Errors     []Message `json:"Errors,omitempty"`
	Warnings   []Message `json:"Warnings,omitempty"`
	AllInfo    []Message `json:"AllInfo,omitempty"`
}

// ComputeResult is the decoded compute response. Fields the engine does not
// interpret are kept in Raw.
type ComputeResult struct {
	Status                           string                     `json:"Status"`
	BasicInformationValidationResult *ValidationResult          `json:"BasicInformationValidationResult,omitempty"`
	BEI                              *float64                   `json:"BEI,omitempty"`
	Raw                              map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the full object in Raw.
func (r *ComputeResult) UnmarshalJSON(data []byte) error {
	type plain ComputeResult
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ComputeResult(decoded)
	r.Raw = raw
	return nil
}

// MarshalJSON writes Raw back out with the known fields applied on top.
func (r ComputeResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Raw)+3)
	for k, v := range r.Raw {
		out[k] = v
	}
	set := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("service: encode %s: %w", key, err)
		}
		out[key] = data
		return nil
	}
	if err := set("Status", r.Status); err != nil {
		return nil, err
	}
	if r.BasicInformationValidationResult != nil {
		if err := set("BasicInformationValidationResult", r.BasicInformationValidationResult); err != nil {
			return nil, err
		}
	}
	if r.BEI != nil {
		if err := set("BEI", *r.BEI); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// Failed reports whether the service rejected the input: a non-OK status or
// an invalid basic information sheet.
func (r *ComputeResult) Failed() bool {
	if r == nil {
		return false
	}
	if r.Status != "" && r.Status != StatusOK {
		return true
	}
	if v := r.BasicInformationValidationResult; v != nil && (!v.IsValid || len(v.Errors) > 0) {
		return true
	}
	return false
}

// ErrorMessage collects the service's error text for a failed result.
func (r *ComputeResult) ErrorMessage() string {
	if r == nil {
		return ""
	}
	var generic map[string]any
	if data, err := json.Marshal(r); err == nil {
		_ = json.Unmarshal(data, &generic)
	}
	return ErrorMessage(generic)
}

// WarningMessages returns the basic information warnings, if any.
func (r *ComputeResult) WarningMessages() []string {
	if r == nil || r.BasicInformationValidationResult == nil {
		return nil
	}
	return collect(nil, r.BasicInformationValidationResult.Warnings)
}

func collect(dst []string, items []Message) []string {
	for _, item := range items {
		if msg := strings.TrimSpace(item.Message); msg != "" {
			dst = append(dst, msg)
		}
	}
	return dst
}

// UnknownErrorMessage is reported when an error payload carries no message.
const UnknownErrorMessage = "Unknown API error"

// ErrorMessage extracts readable text from a service error payload: the
// top-level Errors list, then Errors and AllInfo of every
// "*ValidationResult" object, joined with " / " and de-duplicated. Without
// messages a non-OK Status is reported as "Status=<status>".
func ErrorMessage(payload map[string]any) string {
	var messages []string
	messages = appendMessages(messages, payload["Errors"])

	keys := make([]string, 0, len(payload))
	for key := range payload {
		if strings.HasSuffix(key, "ValidationResult") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		obj, ok := payload[key].(map[string]any)
		if !ok {
			continue
		}
		messages = appendMessages(messages, obj["Errors"])
		messages = appendMessages(messages, obj["AllInfo"])
	}

	if len(messages) > 0 {
		return strings.Join(dedupe(messages), " / ")
	}
	if status, ok := payload["Status"].(string); ok && status != "" && status != StatusOK {
		return "Status=" + status
	}
	return UnknownErrorMessage
}

func appendMessages(dst []string, items any) []string {
	list, ok := items.([]any)
	if !ok {
		return dst
	}
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if msg, ok := obj["Message"].(string); ok && strings.TrimSpace(msg) != "" {
			dst = append(dst, strings.TrimSpace(msg))
		}
	}
	return dst
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
