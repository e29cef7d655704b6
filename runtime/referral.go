package runtime

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"confgw/contract"
	"confgw/domain"
	"confgw/domain/event"
)

// referral drives one call-transfer request from arrival to a terminal
// state. The invite path is asynchronous (directory resolution, then an
// outbound leg whose answer is awaited); the bye path completes in one
// synchronous step. Finalization is idempotent: once the refer request
// ended, by us or externally, every later completion is a no-op.
type referral struct {
	mu   sync.Mutex
	log  *slog.Logger
	orch *Orchestrator

	req     contract.ReferRequest
	request domain.Request
	room    domain.RoomAddress
	target  domain.URI

	session  contract.Session
	streams  []*domain.Stream
	finished bool
}

func newReferral(orch *Orchestrator, req contract.ReferRequest, request domain.Request) *referral {
	return &referral{
		// One correlation id per transfer; its progress spans goroutines.
		log:     orch.log.With("referral", uuid.NewString()),
		orch:    orch,
		req:     req,
		request: request,
		room:    domain.RoomAddressOf(request.To.URI),
	}
}

func (r *referral) start() {
	raw := strings.TrimSpace(r.request.ReferTo.Target)
	raw = strings.TrimPrefix(raw, "<")
	raw = strings.TrimSuffix(raw, ">")
	if !strings.Contains(raw, ":") {
		// Scheme-less targets inherit the request's scheme.
		raw = r.request.URI.Scheme + ":" + raw
	}
	target, err := domain.ParseURI(raw)
	if err != nil {
		r.req.Reject(domain.CodeNotAcceptable)
		return
	}
	r.target = target

	// Finalizations after the refer request's own end must be no-ops.
	go func() {
		<-r.req.Done()
		r.drop()
	}()

	switch r.request.ReferTo.Method() {
	case "invite":
		r.log.Info("Referral adds participant",
			"by", r.request.From.URI.Identity(), "target", target.Identity(), "room", r.room.String())
		r.req.Accept()
		go r.resolve()
	case "bye":
		r.log.Info("Referral removes participant",
			"by", r.request.From.URI.Identity(), "target", target.Identity(), "room", r.room.String())
		r.req.Accept()
		r.orch.RemoveParticipant(target, r.room)
		r.finish(200, "OK")
	default:
		r.req.Reject(domain.CodeNotAcceptable)
	}
}

// resolve runs the one-shot directory resolution for the invite path.
// Failure is abandoned silently: the transfer request was already
// acknowledged and is owed no further signaling.
func (r *referral) resolve() {
	resolveTarget := r.target
	if proxy := r.orch.settings.OutboundProxy; proxy != nil {
		resolveTarget = domain.URI{
			Scheme:     "sip",
			Host:       proxy.Address,
			Port:       proxy.Port,
			Parameters: map[string]string{"transport": proxy.Transport},
		}
	}
	routes, err := r.orch.deps.Resolver.Resolve(r.orch.ctx, resolveTarget, r.orch.settings.Transports)
	if err != nil || len(routes) == 0 {
		r.log.Warn("Directory resolution failed, abandoning referral",
			"target", resolveTarget.Identity(), "error", err)
		return
	}
	r.connect(routes)
}

func (r *referral) connect(routes []domain.Route) {
	if r.dropped() {
		return
	}
	room, err := r.orch.lookupRoom(r.room)
	if err != nil {
		// The room dissolved while we were resolving.
		return
	}
	active := room.ActiveMedia()
	if len(active) == 0 {
		return
	}

	// Offer the room's live media; file transfers are never offered out.
	var streams []*domain.Stream
	for _, kind := range active {
		switch kind {
		case domain.MediaAudio, domain.MediaChat:
			streams = append(streams, &domain.Stream{Kind: kind, Direction: domain.SendRecv})
		}
	}
	if len(streams) == 0 {
		return
	}

	originator := r.request.From
	from := domain.Header{
		DisplayName: "Conference Call",
		URI:         domain.URI{Scheme: "sip", User: r.room.User, Host: r.room.Host},
	}
	contact := domain.URI{Scheme: "sip", User: r.room.User, Host: r.orch.settings.ContactHost}
	if t := routes[0].Transport; t != "" && t != "udp" {
		contact.Parameters = map[string]string{"transport": t}
	}

	referredBy := r.request.ReferredBy
	if referredBy == "" {
		referredBy = originator.URI.String()
	}
	extra := []domain.RawHeader{{Name: "Referred-By", Value: referredBy}}
	if scope := r.orch.settings.ClusterScope; scope != "" {
		extra = append(extra, domain.RawHeader{Name: "Thor-Scope", Value: scope})
	}
	extra = append(extra, domain.RawHeader{Name: "X-Originator-From", Value: originator.URI.String()})

	session, err := r.orch.deps.Dialer.Connect(r.orch.ctx, contract.OutboundParams{
		From:         from,
		To:           domain.Header{URI: r.target},
		Contact:      contact,
		Routes:       routes,
		Streams:      streams,
		IsFocus:      true,
		Subject:      "Join conference request from " + originator.Identity(),
		ExtraHeaders: extra,
	})
	if err != nil {
		r.finish(int(domain.CodeServerError), "Internal Server Error")
		return
	}

	r.mu.Lock()
	r.session = session
	r.streams = streams
	r.mu.Unlock()
	r.watchSession(session)
}

// watchSession forwards the outbound leg's progress to the transfer
// requester and finalizes on its terminal event. After Started the
// orchestrator takes over the remainder of the feed.
func (r *referral) watchSession(session contract.Session) {
	for ev := range session.Events() {
		switch e := ev.(type) {
		case event.RingIndication:
			r.notify(180, "Ringing")
		case event.ProvisionalResponse:
			r.notify(e.Code, e.Reason)
		case event.Started:
			r.finish(200, "OK")
			r.orch.AddParticipant(session, r.room)
			r.clear()
			return
		case event.Failed:
			code := e.Code
			if code == 0 {
				code = int(domain.CodeServerError)
			}
			r.finish(code, e.Reason)
			r.clear()
			return
		case event.Ended:
			// A stream failing to start ends the session without a
			// Failed event; treat it as answered-then-hung-up.
			r.finish(200, "OK")
			r.clear()
			return
		}
	}
}

func (r *referral) notify(code int, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.req.NotifyProgress(code, reason)
}

func (r *referral) finish(code int, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.finished = true
	r.req.End(code, reason)
}

// drop marks the referral finalized without signaling, once the refer
// request's lifecycle ended externally.
func (r *referral) drop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = true
}

func (r *referral) dropped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}

func (r *referral) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	r.streams = nil
}
