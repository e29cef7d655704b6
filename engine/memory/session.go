// Package memory is an in-process stand-in for the protocol engine and
// the media room subsystem. It backs the e2e scenarios and the local
// development harness; nothing in it talks to a network.
package memory

import (
	"sync"

	"confgw/contract"
	"confgw/domain"
	"confgw/domain/event"
)

const eventBuffer = 16

// Session is a scriptable call leg. Tests inject lifecycle events with
// Confirm/Fail/End and observe the orchestrator's accept/reject calls.
type Session struct {
	mu        sync.Mutex
	direction domain.Direction
	remote    domain.URI
	streams   []*domain.Stream
	events    chan event.SessionEvent
	closed    bool

	accepted     []*domain.Stream
	acceptedOnce bool
	isFocus      bool
	rejectCode   domain.RejectCode
	rejected     bool
	rang         bool
}

func NewInboundSession(remote domain.URI, streams ...*domain.Stream) *Session {
	return &Session{
		direction: domain.Incoming,
		remote:    remote,
		streams:   streams,
		events:    make(chan event.SessionEvent, eventBuffer),
	}
}

func NewOutboundSession(remote domain.URI, streams ...*domain.Stream) *Session {
	return &Session{
		direction: domain.Outgoing,
		remote:    remote,
		streams:   streams,
		events:    make(chan event.SessionEvent, eventBuffer),
	}
}

func (s *Session) Direction() domain.Direction       { return s.direction }
func (s *Session) RemoteIdentity() domain.URI        { return s.remote }
func (s *Session) ProposedStreams() []*domain.Stream { return s.streams }
func (s *Session) Events() <-chan event.SessionEvent { return s.events }

func (s *Session) Accept(streams []*domain.Stream, isFocus bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accepted = streams
	s.acceptedOnce = true
	s.isFocus = isFocus
	return nil
}

func (s *Session) Reject(code domain.RejectCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected = true
	s.rejectCode = code
	return nil
}

func (s *Session) SendRingIndication() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rang = true
}

// Deliver injects one lifecycle event into the session's feed.
func (s *Session) Deliver(ev event.SessionEvent) {
	s.events <- ev
}

// Confirm delivers the Started event.
func (s *Session) Confirm() {
	s.Deliver(event.Started{})
}

// Fail delivers a Failed event and closes the feed.
func (s *Session) Fail(code int, reason string) {
	s.Deliver(event.Failed{Code: code, Reason: reason})
	s.closeFeed()
}

// End delivers the Ended event and closes the feed.
func (s *Session) End() {
	s.Deliver(event.Ended{})
	s.closeFeed()
}

func (s *Session) closeFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

// Accepted reports the accept call, if any.
func (s *Session) Accepted() ([]*domain.Stream, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted, s.isFocus, s.acceptedOnce
}

// RejectedWith reports the reject call, if any.
func (s *Session) RejectedWith() (domain.RejectCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejectCode, s.rejected
}

func (s *Session) Rang() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rang
}

var _ contract.Session = (*Session)(nil)
