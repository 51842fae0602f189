package contract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-beiform/pkg/payload"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// Operation paths described by the bundled document.
const (
	ComputeOperation = "/official/compute"
	ReportOperation  = "/official/report"
)

// Issue is one contract violation.
type Issue struct {
	// Pointer is the JSON pointer into the request body.
	Pointer string `json:"pointer,omitempty"`
	// Path is the FieldPath form of Pointer.
	Path    string `json:"path,omitempty"`
	Step    int    `json:"step"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Result is the outcome of a contract check.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Validator checks request bodies against one OpenAPI document.
type Validator struct {
	doc    *openapi3.T
	router *wizard.Router
}

type options struct {
	data   []byte
	source string
	router *wizard.Router
}

// Option customises a Validator.
type Option func(*options)

// WithDocument replaces the bundled document with data.
func WithDocument(data []byte) Option {
	return func(o *options) {
		if len(data) > 0 {
			o.data = data
			o.source = "inline"
		}
	}
}

// WithRouter sets the router used to attach steps to issues.
func WithRouter(router *wizard.Router) Option {
	return func(o *options) {
		if router != nil {
			o.router = router
		}
	}
}

// New loads and validates the contract document.
func New(ctx context.Context, opts ...Option) (*Validator, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.data == nil {
		data, err := fs.ReadFile(EmbeddedFS(), DefaultFile)
		if err != nil {
			return nil, fmt.Errorf("contract: read %s: %w", DefaultFile, err)
		}
		cfg.data = data
		cfg.source = DefaultFile
	}
	if strings.TrimSpace(string(cfg.data)) == "" {
		return nil, ErrEmptyDocument
	}
	if cfg.router == nil {
		cfg.router = wizard.NewRouter()
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(cfg.data)
	if err != nil {
		return nil, fmt.Errorf("contract: load %s: %w", cfg.source, err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate %s: %w", cfg.source, err)
	}
	return &Validator{doc: doc, router: cfg.router}, nil
}

// RequestSchema returns the JSON request body schema of the POST operation
// at path.
func (v *Validator) RequestSchema(path string) (*openapi3.Schema, error) {
	if v.doc.Paths == nil {
		return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, path)
	}
	item := v.doc.Paths.Find(path)
	if item == nil || item.Post == nil || item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, path)
	}
	media := item.Post.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("%w: %s has no JSON body", ErrOperationNotFound, path)
	}
	return media.Schema.Value, nil
}

// ValidatePayload checks p against the compute operation.
func (v *Validator) ValidatePayload(p *payload.Payload) (Result, error) {
	generic, err := payload.Generic(p)
	if err != nil {
		return Result{}, fmt.Errorf("contract: %w", err)
	}
	return v.Validate(ComputeOperation, generic)
}

// Validate checks a decoded JSON body against the operation at path. All
// violations are collected.
func (v *Validator) Validate(path string, body any) (Result, error) {
	schema, err := v.RequestSchema(path)
	if err != nil {
		return Result{}, err
	}
	err = schema.VisitJSON(body, openapi3.MultiErrors())
	if err == nil {
		return Result{Valid: true}, nil
	}

	var issues []Issue
	for _, e := range flatten(err) {
		issues = append(issues, v.issueFromError(e))
	}
	return Result{Valid: false, Issues: dedupe(issues)}, nil
}

func (v *Validator) issueFromError(err error) Issue {
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return Issue{Message: strings.TrimSpace(err.Error()), Step: v.router.Last()}
	}
	segments := schemaErr.JSONPointer()
	pointer := ""
	if len(segments) > 0 {
		pointer = "/" + strings.Join(escapePointer(segments), "/")
	}
	path := wizard.NormalizeFieldPath(pointer)
	msg := strings.TrimSpace(schemaErr.Reason)
	if msg == "" {
		msg = strings.TrimSpace(schemaErr.Error())
	}
	return Issue{
		Pointer: pointer,
		Path:    path,
		Step:    v.router.StepForFieldPath(path),
		Message: msg,
	}
}

func flatten(err error) []error {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []error
		for _, e := range multi {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

func escapePointer(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~", "~0")
		out[i] = strings.ReplaceAll(s, "/", "~1")
	}
	return out
}

func dedupe(issues []Issue) []Issue {
	seen := make(map[string]struct{}, len(issues))
	out := issues[:0]
	for _, issue := range issues {
		key := issue.Pointer + "\x00" + issue.Message
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, issue)
	}
	return out
}
