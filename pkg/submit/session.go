package submit

import (
	"context"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/goliatone/go-beiform/pkg/form"
)

// ticketLength is the nanoid size of submission tickets.
const ticketLength = 10

// Session serialises submissions for one user. It is safe for concurrent
// use.
type Session struct {
	submitter *Submitter
	newTicket func() (string, error)

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithTicketSource replaces the ticket generator.
func WithTicketSource(fn func() (string, error)) SessionOption {
	return func(s *Session) {
		if fn != nil {
			s.newTicket = fn
		}
	}
}

// NewSession wraps submitter.
func NewSession(submitter *Submitter, opts ...SessionOption) *Session {
	s := &Session{
		submitter: submitter,
		newTicket: func() (string, error) { return gonanoid.New(ticketLength) },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// InFlight reports whether a submission is outstanding.
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != ""
}

// Cancel abandons the outstanding submission, if any. Its outcome will be
// reported as stale.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.current = ""
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Compute submits snap to the compute operation.
func (s *Session) Compute(ctx context.Context, snap *form.Snapshot) (Outcome, error) {
	return s.submit(ctx, KindCompute, snap)
}

// Report submits snap to the report operation.
func (s *Session) Report(ctx context.Context, snap *form.Snapshot) (Outcome, error) {
	return s.submit(ctx, KindReport, snap)
}

func (s *Session) submit(ctx context.Context, kind Kind, snap *form.Snapshot) (Outcome, error) {
	if snap == nil {
		return Outcome{}, ErrNoSnapshot
	}
	ticket, runCtx, err := s.begin(ctx)
	if err != nil {
		return Outcome{}, err
	}

	// Edits made while waiting must not reach the request.
	frozen := snap.Clone()
	var out Outcome
	switch kind {
	case KindReport:
		out = s.submitter.Report(runCtx, frozen)
	default:
		out = s.submitter.Compute(runCtx, frozen)
	}
	out.Ticket = ticket

	if !s.finish(ticket) {
		out.Status = StatusStale
		out.Step = 0
	}
	return out, nil
}

func (s *Session) begin(ctx context.Context) (string, context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != "" {
		return "", nil, ErrInFlight
	}
	ticket, err := s.newTicket()
	if err != nil {
		return "", nil, err
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.current = ticket
	s.cancel = cancel
	return ticket, runCtx, nil
}

// finish releases the session and reports whether ticket was still current.
func (s *Session) finish(ticket string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != ticket {
		return false
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.current = ""
	s.cancel = nil
	return true
}
