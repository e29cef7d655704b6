package memory

import (
	"context"
	"sync"

	"confgw/contract"
	"confgw/domain"
)

// Resolver answers directory lookups from a fixed route table.
type Resolver struct {
	mu     sync.Mutex
	routes []domain.Route
	err    error
	calls  []domain.URI
}

func NewResolver(routes ...domain.Route) *Resolver {
	return &Resolver{routes: routes}
}

// FailWith makes every subsequent resolution fail.
func (r *Resolver) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *Resolver) Resolve(_ context.Context, target domain.URI, _ []string) ([]domain.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, target)
	if r.err != nil {
		return nil, r.err
	}
	return r.routes, nil
}

// Resolved lists the targets resolution was asked for.
func (r *Resolver) Resolved() []domain.URI {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.URI(nil), r.calls...)
}

var _ contract.Resolver = (*Resolver)(nil)

// Dialer hands out scripted outbound sessions.
type Dialer struct {
	mu       sync.Mutex
	err      error
	calls    []contract.OutboundParams
	sessions []*Session
}

func NewDialer() *Dialer {
	return &Dialer{}
}

func (d *Dialer) FailWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// Connect creates an outbound session toward the requested target,
// proposing the requested streams. The caller scripts its lifecycle
// through the returned session.
func (d *Dialer) Connect(_ context.Context, p contract.OutboundParams) (contract.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, p)
	if d.err != nil {
		return nil, d.err
	}
	session := NewOutboundSession(p.To.URI, p.Streams...)
	d.sessions = append(d.sessions, session)
	return session, nil
}

// LastSession returns the most recently created outbound session.
func (d *Dialer) LastSession() (*Session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.sessions) == 0 {
		return nil, false
	}
	return d.sessions[len(d.sessions)-1], true
}

// Calls lists every Connect invocation.
func (d *Dialer) Calls() []contract.OutboundParams {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]contract.OutboundParams(nil), d.calls...)
}

// LastCall returns the most recent Connect invocation.
func (d *Dialer) LastCall() (contract.OutboundParams, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.calls) == 0 {
		return contract.OutboundParams{}, false
	}
	return d.calls[len(d.calls)-1], true
}

var _ contract.Dialer = (*Dialer)(nil)
