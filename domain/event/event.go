// Package event defines the closed set of session lifecycle events the
// protocol engine delivers. Every consumer switches over the concrete
// variants, so an unhandled kind is visible at review time instead of
// being swallowed by name-based dispatch.
package event

// SessionEvent is one lifecycle notification for a single session.
// Within one session's stream, Started happens-before Ended or Failed;
// no ordering holds across sessions.
type SessionEvent interface {
	isSessionEvent()
}

// Started reports that the session is established.
type Started struct{}

// Failed reports that the session could not be established.
// Code and Reason may be zero when the engine had nothing to report.
type Failed struct {
	Code   int
	Reason string
}

// Ended reports session termination. It can arrive without a prior
// Started when an engine-level failure path raced establishment.
type Ended struct{}

// RingIndication reports remote ringing on an outbound session.
type RingIndication struct{}

// ProvisionalResponse reports a non-final response on an outbound session.
type ProvisionalResponse struct {
	Code   int
	Reason string
}

func (Started) isSessionEvent()             {}
func (Failed) isSessionEvent()              {}
func (Ended) isSessionEvent()               {}
func (RingIndication) isSessionEvent()      {}
func (ProvisionalResponse) isSessionEvent() {}
