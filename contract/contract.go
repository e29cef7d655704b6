//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"confgw/domain"
	"confgw/domain/event"
)

// Session is one call leg owned by the protocol engine. The orchestrator
// only reads identity and streams and drives accept/reject; everything
// else (dialogs, media, transport) stays inside the engine.
type Session interface {
	Direction() domain.Direction
	RemoteIdentity() domain.URI
	ProposedStreams() []*domain.Stream
	Accept(streams []*domain.Stream, isFocus bool) error
	Reject(code domain.RejectCode) error
	SendRingIndication()
	// Events delivers this session's lifecycle feed. The engine closes
	// the channel after the terminal event.
	Events() <-chan event.SessionEvent
}

// Room is the per-conference media entity owned by the mixing subsystem.
type Room interface {
	Address() domain.RoomAddress
	Started() bool
	Stopping() bool
	Empty() bool
	ActiveMedia() []domain.MediaKind
	SharedFiles() []domain.FileRecord
	Start()
	// Stop begins asynchronous teardown; the returned channel is closed
	// once teardown completed.
	Stop() <-chan struct{}
	AddSession(s Session)
	RemoveSession(s Session)
	Holds(s Session) bool
	TerminateSessions(participant domain.URI)
	HandleSubscription(sub SubscribeRequest, req domain.Request)
}

// RoomFactory creates the Room entity for a newly admitted address.
type RoomFactory interface {
	NewRoom(addr domain.RoomAddress) Room
}

// SubscribeRequest is an inbound presence/membership watch. Admitted
// requests are handed to the room, rejected ones answered with a code.
type SubscribeRequest interface {
	Reject(code domain.RejectCode)
}

// ReferRequest is an inbound call-transfer request. Done is closed when
// the request's own lifecycle ends externally; finalization after that
// point must be a no-op.
type ReferRequest interface {
	Accept()
	Reject(code domain.RejectCode)
	NotifyProgress(code int, reason string)
	End(code int, reason string)
	Done() <-chan struct{}
}

// MessageRequest is an inbound instant message outside any session.
type MessageRequest interface {
	Answer(code int)
}

// Resolver performs one-shot directory resolution of a target or proxy
// address into routable endpoints.
type Resolver interface {
	Resolve(ctx context.Context, target domain.URI, transports []string) ([]domain.Route, error)
}

// OutboundParams is everything the engine needs to build an outbound leg.
type OutboundParams struct {
	From         domain.Header
	To           domain.Header
	Contact      domain.URI
	Routes       []domain.Route
	Streams      []*domain.Stream
	IsFocus      bool
	Subject      string
	ExtraHeaders []domain.RawHeader
}

// Dialer initiates outbound sessions through the protocol engine.
type Dialer interface {
	Connect(ctx context.Context, p OutboundParams) (Session, error)
}

// StatsSource exposes a registry snapshot for telemetry.
type StatsSource interface {
	Snapshot() domain.Stats
}

// Worker is a supervised background task. It must return promptly once
// its context is canceled and must not protect itself against panics.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// used for logging and supervision without forcing a naming method onto
// the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
