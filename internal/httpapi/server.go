// Package httpapi exposes validation, payload construction, submission and
// review summaries over JSON HTTP endpoints.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-beiform/internal/config"
	"github.com/goliatone/go-beiform/pkg/buildingtype"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/reference"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/summary"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 4 << 20

// Server handles the HTTP API.
type Server struct {
	submitter  *submit.Submitter
	aggregator *validation.Aggregator
	table      *reference.Table
	renderer   *summary.Renderer
	readiness  func() config.Readiness
	logger     *slog.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithAggregator sets the aggregator used by /v1/validate and /v1/review.
// It defaults to the submitter's aggregator. /v1/reference serves the
// reference table of its field validator.
func WithAggregator(a *validation.Aggregator) Option {
	return func(s *Server) {
		if a != nil {
			s.aggregator = a
		}
	}
}

// WithRenderer replaces the review summary renderer.
func WithRenderer(r *summary.Renderer) Option {
	return func(s *Server) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithReadiness attaches the readiness report served by /healthz.
func WithReadiness(fn func() config.Readiness) Option {
	return func(s *Server) {
		s.readiness = fn
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a server around submitter. A nil submitter gets one without a
// backend, so compute and report fail with a normalised message.
func New(submitter *submit.Submitter, opts ...Option) *Server {
	if submitter == nil {
		submitter = submit.NewSubmitter(nil)
	}
	s := &Server{
		submitter: submitter,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.aggregator == nil {
		s.aggregator = submitter.Aggregator()
	}
	s.table = s.aggregator.FieldValidator().Table()
	if s.renderer == nil {
		s.renderer = summary.NewRenderer()
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/steps", s.handleSteps)
	mux.HandleFunc("GET /v1/reference", s.handleReferenceTypes)
	mux.HandleFunc("GET /v1/reference/{type}", s.handleReference)
	mux.HandleFunc("POST /v1/validate", s.handleValidate)
	mux.HandleFunc("POST /v1/payload", s.handlePayload)
	mux.HandleFunc("POST /v1/compute", s.handleCompute)
	mux.HandleFunc("POST /v1/report", s.handleReport)
	mux.HandleFunc("POST /v1/review", s.handleReview)
	return mux
}

func (s *Server) router() *wizard.Router { return s.submitter.Router() }

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": map[string]any{"message": message},
	})
}

func (s *Server) readSnapshot(w http.ResponseWriter, r *http.Request) (*form.Snapshot, bool) {
	blob, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	snap, err := form.Decode(blob)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return snap, true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{"ok": true}
	if s.readiness != nil {
		body["readiness"] = s.readiness()
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleSteps(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"steps": s.router().Steps()})
}

type referenceType struct {
	Type  buildingtype.Type `json:"type"`
	Label string            `json:"label"`
}

func (s *Server) handleReferenceTypes(w http.ResponseWriter, _ *http.Request) {
	types := s.table.Types()
	out := make([]referenceType, 0, len(types))
	for _, t := range types {
		out = append(out, referenceType{Type: t, Label: buildingtype.Label(t)})
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": s.table.Unit(), "types": out})
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("type"))
	if !buildingtype.Known(id) {
		writeError(w, http.StatusNotFound, "unknown building type: "+id)
		return
	}
	typ := buildingtype.Resolve(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"type":     typ,
		"label":    buildingtype.Label(typ),
		"guidance": s.table.Guidance(id),
	})
}

type validateResponse struct {
	validation.Result
	Step  int  `json:"step,omitempty"`
	Small bool `json:"small"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	res := s.aggregator.Validate(snap)
	out := validateResponse{Result: res, Small: snap.IsSmall()}
	if res.Blocking {
		out.Step = s.router().StepForFieldPath(res.FirstPath)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePayload(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	prepared := s.submitter.Prepare(snap)
	status := http.StatusOK
	if prepared.Blocked() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, prepared)
}

func outcomeStatus(out submit.Outcome) int {
	switch out.Status {
	case submit.StatusOK:
		return http.StatusOK
	case submit.StatusBlocked:
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	out := s.submitter.Compute(r.Context(), snap)
	s.logger.Info("compute request", "status", out.Status, "step", out.Step)
	writeJSON(w, outcomeStatus(out), out)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	out := s.submitter.Report(r.Context(), snap)
	s.logger.Info("report request", "status", out.Status, "step", out.Step)
	if out.Status != submit.StatusOK {
		writeJSON(w, outcomeStatus(out), out)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="bei-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Report)
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	sum := summary.Build(snap, s.aggregator.Validate(snap), nil, s.router())

	var (
		body        string
		err         error
		contentType = "text/markdown; charset=utf-8"
	)
	if r.URL.Query().Get("format") == "html" {
		contentType = "text/html; charset=utf-8"
		body, err = s.renderer.HTML(sum)
	} else {
		body, err = s.renderer.Markdown(sum)
	}
	if err != nil {
		s.logger.Error("render review", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}
