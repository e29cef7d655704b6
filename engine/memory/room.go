package memory

import (
	"sync"

	"confgw/contract"
	"confgw/domain"
)

// Room is a minimal media-room stand-in: it tracks membership and
// derives its active media from the members' streams.
type Room struct {
	mu       sync.Mutex
	addr     domain.RoomAddress
	started  bool
	stopping bool
	sessions []contract.Session
	files    []domain.FileRecord

	terminated    []domain.URI
	subscriptions int
	stopped       chan struct{}
}

func NewRoom(addr domain.RoomAddress) *Room {
	return &Room{addr: addr, stopped: make(chan struct{})}
}

func (r *Room) Address() domain.RoomAddress { return r.addr }

func (r *Room) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

func (r *Room) Stopping() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopping
}

func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions) == 0
}

func (r *Room) ActiveMedia() []domain.MediaKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[domain.MediaKind]struct{})
	var out []domain.MediaKind
	for _, s := range r.sessions {
		for _, stream := range s.ProposedStreams() {
			if _, ok := seen[stream.Kind]; ok {
				continue
			}
			seen[stream.Kind] = struct{}{}
			out = append(out, stream.Kind)
		}
	}
	return out
}

func (r *Room) SharedFiles() []domain.FileRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.FileRecord(nil), r.files...)
}

// ShareFile registers a file in the room's shared index.
func (r *Room) ShareFile(f domain.FileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, f)
}

func (r *Room) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
}

func (r *Room) Stop() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopping {
		r.stopping = true
		close(r.stopped)
	}
	return r.stopped
}

func (r *Room) AddSession(s contract.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, s)
}

func (r *Room) RemoveSession(s contract.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, held := range r.sessions {
		if held == s {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return
		}
	}
}

func (r *Room) Holds(s contract.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, held := range r.sessions {
		if held == s {
			return true
		}
	}
	return false
}

// TerminateSessions ends every member session whose remote identity
// matches the participant.
func (r *Room) TerminateSessions(participant domain.URI) {
	r.mu.Lock()
	r.terminated = append(r.terminated, participant)
	var targets []*Session
	for _, held := range r.sessions {
		if held.RemoteIdentity().Identity() != participant.Identity() {
			continue
		}
		if s, ok := held.(*Session); ok {
			targets = append(targets, s)
		}
	}
	r.mu.Unlock()
	for _, s := range targets {
		s.End()
	}
}

func (r *Room) HandleSubscription(sub contract.SubscribeRequest, req domain.Request) {
	// Membership notification is the media subsystem's business; the
	// harness only records that the watch arrived.
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscriptions++
}

// Subscriptions counts the watches delegated to this room.
func (r *Room) Subscriptions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.subscriptions
}

// Terminations lists the participants TerminateSessions was called for.
func (r *Room) Terminations() []domain.URI {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.URI(nil), r.terminated...)
}

var _ contract.Room = (*Room)(nil)

// Factory creates harness rooms and remembers them for inspection.
type Factory struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewFactory() *Factory {
	return &Factory{rooms: make(map[string]*Room)}
}

func (f *Factory) NewRoom(addr domain.RoomAddress) contract.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := NewRoom(addr)
	f.rooms[addr.String()] = room
	return room
}

// Room returns the last room created for an address.
func (f *Factory) Room(addr domain.RoomAddress) (*Room, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[addr.String()]
	return room, ok
}

var _ contract.RoomFactory = (*Factory)(nil)
