// Package runtime is the call-control core of the gateway: it admits
// inbound sessions and subscriptions, drives call-transfer workflows and
// reconciles room membership against the engine's lifecycle events.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"confgw/acl"
	"confgw/contract"
	"confgw/domain"
	"confgw/domain/event"
	"confgw/storage"
)

const defaultRingAcceptDelay = 4 * time.Second

// Settings carries the static configuration of one orchestrator.
type Settings struct {
	// RingAcceptDelay is the grace period between the ring indication and
	// the accept of an audio-bearing inbound call.
	RingAcceptDelay time.Duration
	// ContactHost is the local host advertised in outbound contact URIs.
	ContactHost string
	// Transports is the preference list handed to directory resolution.
	Transports []string
	// OutboundProxy, when set, is resolved instead of referral targets.
	OutboundProxy *domain.Route
	// ClusterScope, when non-empty, tags referral-invited sessions with a
	// cluster-scope marker header.
	ClusterScope string
}

// Deps are the injected collaborators. None of them is optional.
type Deps struct {
	ACL        *acl.Engine
	Files      *storage.FileStore
	Rooms      contract.RoomFactory
	Resolver   contract.Resolver
	Dialer     contract.Dialer
	Supervisor contract.ISupervisor
}

// Orchestrator owns the room registry, the participant ledger and the
// pending-session set. A single mutex serializes every mutation; room
// teardown is the one long operation and runs outside the lock behind a
// per-address retiring barrier, so addresses being torn down cannot be
// reused until their stop completed while other addresses stay free.
type Orchestrator struct {
	mu       sync.Mutex
	log      *slog.Logger
	settings Settings
	deps     Deps

	rooms    *RoomRegistry
	ledger   *ParticipantLedger
	pending  []contract.Session
	sessions map[contract.Session]domain.RoomAddress
	retiring map[string]chan struct{}

	ctx context.Context
}

func NewOrchestrator(log *slog.Logger, settings Settings, deps Deps) *Orchestrator {
	if settings.RingAcceptDelay == 0 {
		settings.RingAcceptDelay = defaultRingAcceptDelay
	}
	if len(settings.Transports) == 0 {
		settings.Transports = []string{"tls", "tcp", "udp"}
	}
	return &Orchestrator{
		log:      log,
		settings: settings,
		deps:     deps,
		rooms:    NewRoomRegistry(deps.Rooms),
		ledger:   NewParticipantLedger(),
		sessions: make(map[contract.Session]domain.RoomAddress),
		retiring: make(map[string]chan struct{}),
		ctx:      context.Background(),
	}
}

// Start launches the supervised background workers. The context bounds
// every asynchronous continuation the orchestrator spawns.
func (o *Orchestrator) Start(ctx context.Context) {
	o.ctx = ctx
	go o.deps.Supervisor.Run(ctx)
}

func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.deps.Supervisor.Stop()
}

// IncomingSession is the admission controller for inbound call attempts.
func (o *Orchestrator) IncomingSession(session contract.Session, req domain.Request) {
	o.log.Info("New incoming session",
		"from", session.RemoteIdentity().Identity(), "room", req.URI.Identity())

	byKind := lo.GroupBy(session.ProposedStreams(), func(s *domain.Stream) domain.MediaKind {
		return s.Kind
	})
	audio := byKind[domain.MediaAudio]
	chat := byKind[domain.MediaChat]
	files := byKind[domain.MediaFileTransfer]
	if len(audio)+len(chat)+len(files) == 0 {
		_ = session.Reject(domain.CodeNotAcceptable)
		return
	}

	target := domain.RoomAddressOf(req.URI)
	if err := o.deps.ACL.Validate(target, session.RemoteIdentity()); err != nil {
		_ = session.Reject(domain.CodeForbidden)
		return
	}

	// Pull requests must reference a file the room actually shares and
	// that still exists on disk.
	for _, stream := range files {
		if stream.Direction != domain.SendOnly {
			continue
		}
		if !o.populateFileStream(target, stream) {
			_ = session.Reject(domain.CodeNotFound)
			return
		}
	}

	o.mu.Lock()
	o.pending = append(o.pending, session)
	o.sessions[session] = target
	o.mu.Unlock()
	o.watch(session)

	accept := pickStream(audio, chat, files)
	delay := time.Duration(0)
	if len(audio) > 0 {
		// Let the caller's client show progress while a human answers.
		session.SendRingIndication()
		delay = o.settings.RingAcceptDelay
	}
	time.AfterFunc(delay, func() { o.acceptPending(session, accept) })
}

// pickStream selects the single stream to accept, preferring
// audio over chat over file-transfer.
func pickStream(groups ...[]*domain.Stream) []*domain.Stream {
	for _, g := range groups {
		if len(g) > 0 {
			return []*domain.Stream{g[0]}
		}
	}
	return nil
}

// populateFileStream resolves a gateway-to-caller file request against
// the room's shared file index and the backing store, filling in the
// selector's size and content type.
func (o *Orchestrator) populateFileStream(addr domain.RoomAddress, stream *domain.Stream) bool {
	if stream.File == nil {
		return false
	}
	o.mu.Lock()
	room, err := o.rooms.Get(addr)
	o.mu.Unlock()
	if err != nil {
		return false
	}
	record, ok := lo.Find(room.SharedFiles(), func(f domain.FileRecord) bool {
		return f.Hash == stream.File.Hash
	})
	if !ok {
		return false
	}
	path, size, err := o.deps.Files.Locate(addr, record.Name)
	if err != nil {
		// The file was shared but has since vanished from disk.
		return false
	}
	if stream.File.Size == 0 {
		stream.File.Size = size
	}
	if stream.File.ContentType == "" {
		stream.File.ContentType = o.deps.Files.ContentType(path)
	}
	return true
}

// acceptPending fires when the admission delay expires. The attempt is
// accepted only if it is still pending; a session that failed or ended
// in the meantime makes the timer a no-op.
func (o *Orchestrator) acceptPending(session contract.Session, streams []*domain.Stream) {
	o.mu.Lock()
	still := lo.Contains(o.pending, session)
	o.mu.Unlock()
	if !still {
		return
	}
	if err := session.Accept(streams, true); err != nil {
		o.log.Warn("Accepting pending session failed", "error", err)
	}
}

// IncomingSubscription is the reduced admission path for presence and
// membership watches.
func (o *Orchestrator) IncomingSubscription(sub contract.SubscribeRequest, req domain.Request) {
	if req.From == nil || req.To == nil {
		sub.Reject(domain.CodeBadRequest)
		return
	}
	caller := req.From.URI
	primary := domain.RoomAddressOf(req.URI)
	alternate := domain.RoomAddressOf(req.To.URI)

	if err := o.deps.ACL.Validate(primary, caller); err != nil {
		if err = o.deps.ACL.Validate(alternate, caller); err != nil {
			// Identities the room itself invited bypass ACL.
			o.mu.Lock()
			invited := o.ledger.Invited(primary, caller) || o.ledger.Invited(alternate, caller)
			o.mu.Unlock()
			if !invited {
				sub.Reject(domain.CodeForbidden)
				return
			}
		}
	}

	o.mu.Lock()
	room, err := o.rooms.Get(primary)
	if err != nil {
		room, err = o.rooms.Get(alternate)
	}
	o.mu.Unlock()
	if err != nil || !room.Started() {
		sub.Reject(domain.CodeTemporarilyUnavailable)
		return
	}
	room.HandleSubscription(sub, req)
}

// IncomingReferral validates a call-transfer request and hands it to the
// referral workflow.
func (o *Orchestrator) IncomingReferral(ref contract.ReferRequest, req domain.Request) {
	if req.From == nil || req.To == nil || req.ReferTo == nil {
		ref.Reject(domain.CodeBadRequest)
		return
	}
	if err := o.deps.ACL.Validate(domain.RoomAddressOf(req.URI), req.From.URI); err != nil {
		ref.Reject(domain.CodeForbidden)
		return
	}
	newReferral(o, ref, req).start()
}

// IncomingMessage answers out-of-session instant messages: the focus
// does not take them.
func (o *Orchestrator) IncomingMessage(msg contract.MessageRequest) {
	msg.Answer(405)
}

// AddParticipant admits a referral-invited outbound session into a room
// and records the capability grant for its identity.
func (o *Orchestrator) AddParticipant(session contract.Session, addr domain.RoomAddress) {
	o.log.Info("Outgoing session started",
		"to", session.RemoteIdentity().Identity(), "room", addr.String())
	o.mu.Lock()
	o.ledger.Grant(addr, session.RemoteIdentity())
	o.sessions[session] = addr
	room := o.getOrCreateRoomLocked(addr)
	if !room.Started() {
		room.Start()
	}
	room.AddSession(session)
	o.mu.Unlock()
	o.watch(session)
}

// RemoveParticipant terminates a participant's sessions in a room;
// no-op when the room no longer exists.
func (o *Orchestrator) RemoveParticipant(participant domain.URI, addr domain.RoomAddress) {
	o.mu.Lock()
	room, err := o.rooms.Get(addr)
	o.mu.Unlock()
	if err != nil {
		return
	}
	room.TerminateSessions(participant)
}

// watch consumes a session's lifecycle feed and applies it to the
// registries. The feed ends with the session.
func (o *Orchestrator) watch(session contract.Session) {
	go func() {
		for ev := range session.Events() {
			switch e := ev.(type) {
			case event.Started:
				o.sessionStarted(session)
			case event.Failed:
				o.sessionFailed(session, e)
			case event.Ended:
				o.sessionEnded(session)
				return
			case event.RingIndication, event.ProvisionalResponse:
				// Progress on admitted legs needs no bookkeeping.
			}
		}
	}()
}

func (o *Orchestrator) sessionStarted(session contract.Session) {
	o.mu.Lock()
	o.removePendingLocked(session)
	addr, tracked := o.sessions[session]
	if !tracked {
		o.mu.Unlock()
		return
	}
	room := o.getOrCreateRoomLocked(addr)
	if !room.Started() {
		room.Start()
	}
	room.AddSession(session)
	o.mu.Unlock()
	o.log.Info("Session started", "from", session.RemoteIdentity().Identity(), "room", addr.String())
}

func (o *Orchestrator) sessionFailed(session contract.Session, e event.Failed) {
	o.mu.Lock()
	o.removePendingLocked(session)
	delete(o.sessions, session)
	o.mu.Unlock()
	o.log.Info("Session failed",
		"from", session.RemoteIdentity().Identity(), "code", e.Code, "reason", e.Reason)
}

// sessionEnded reconciles a terminated session. It tolerates Ended
// without a prior Started: the room lookup simply misses and the event
// degrades to bookkeeping removal.
func (o *Orchestrator) sessionEnded(session contract.Session) {
	o.mu.Lock()
	addr, tracked := o.sessions[session]
	delete(o.sessions, session)
	o.removePendingLocked(session)
	if !tracked {
		o.mu.Unlock()
		return
	}
	if session.Direction() == domain.Outgoing {
		o.ledger.Release(addr, session.RemoteIdentity())
	}
	room, err := o.rooms.Get(addr)
	if err != nil {
		// Already cleaned up, or the session never started.
		o.mu.Unlock()
		return
	}
	if room.Holds(session) {
		room.RemoveSession(session)
	}
	if room.Empty() && !room.Stopping() {
		o.retireRoomLocked(addr, room)
	}
	o.mu.Unlock()
	o.log.Info("Session ended", "from", session.RemoteIdentity().Identity(), "room", addr.String())
}

// retireRoomLocked removes the room from the registry and awaits its
// asynchronous stop outside the lock. Until the stop completes the
// address stays barred from re-creation via the retiring barrier.
func (o *Orchestrator) retireRoomLocked(addr domain.RoomAddress, room contract.Room) {
	key := addr.String()
	o.rooms.Remove(addr)
	barrier := make(chan struct{})
	o.retiring[key] = barrier

	o.mu.Unlock()
	<-room.Stop()
	o.mu.Lock()

	delete(o.retiring, key)
	close(barrier)
}

// getOrCreateRoomLocked resolves or creates a room, waiting out any
// in-flight teardown of the same address first.
func (o *Orchestrator) getOrCreateRoomLocked(addr domain.RoomAddress) contract.Room {
	for {
		barrier, busy := o.retiring[addr.String()]
		if !busy {
			return o.rooms.GetOrCreate(addr)
		}
		o.mu.Unlock()
		<-barrier
		o.mu.Lock()
	}
}

func (o *Orchestrator) removePendingLocked(session contract.Session) {
	o.pending = lo.Without(o.pending, session)
}

// lookupRoom is the read path used by the referral workflow.
func (o *Orchestrator) lookupRoom(addr domain.RoomAddress) (contract.Room, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rooms.Get(addr)
}

// Snapshot implements contract.StatsSource.
func (o *Orchestrator) Snapshot() domain.Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return domain.Stats{
		Rooms:           o.rooms.Len(),
		PendingSessions: len(o.pending),
		TrackedSessions: len(o.sessions),
		LedgerEntries:   o.ledger.Size(),
	}
}
