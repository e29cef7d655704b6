package runtime_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"confgw/acl"
	"confgw/domain"
	"confgw/engine/memory"
	"confgw/mocks"
	"confgw/runtime"
	"confgw/storage"
)

const testDelay = 200 * time.Millisecond

type fixture struct {
	orch     *runtime.Orchestrator
	factory  *memory.Factory
	resolver *memory.Resolver
	dialer   *memory.Dialer
	filesDir string
}

func newFixture(t *testing.T, policies acl.StaticPolicies) *fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	f := &fixture{
		factory:  memory.NewFactory(),
		resolver: memory.NewResolver(domain.Route{Address: "10.0.0.1", Port: 5060, Transport: "tcp"}),
		dialer:   memory.NewDialer(),
		filesDir: t.TempDir(),
	}
	f.orch = runtime.NewOrchestrator(log,
		runtime.Settings{
			RingAcceptDelay: testDelay,
			ContactHost:     "gw.example.org",
		},
		runtime.Deps{
			ACL:      acl.NewEngine(policies),
			Files:    storage.NewFileStore(f.filesDir, log),
			Rooms:    f.factory,
			Resolver: f.resolver,
			Dialer:   f.dialer,
		})
	return f
}

func uri(t *testing.T, raw string) domain.URI {
	t.Helper()
	u, err := domain.ParseURI(raw)
	require.NoError(t, err)
	return u
}

func roomRequest(t *testing.T, caller, room string) domain.Request {
	t.Helper()
	from := uri(t, caller)
	target := uri(t, room)
	return domain.Request{URI: target, From: &domain.Header{URI: from}, To: &domain.Header{URI: target}}
}

func audioStream() *domain.Stream {
	return &domain.Stream{Kind: domain.MediaAudio, Direction: domain.SendRecv}
}

func chatStream() *domain.Stream {
	return &domain.Stream{Kind: domain.MediaChat, Direction: domain.SendRecv}
}

// joinRoom admits and confirms a chat session so the room exists.
func joinRoom(t *testing.T, f *fixture, caller, room string) *memory.Session {
	t.Helper()
	session := memory.NewInboundSession(uri(t, caller), chatStream())
	f.orch.IncomingSession(session, roomRequest(t, caller, room))
	session.Confirm()

	addr := domain.RoomAddressOf(uri(t, room))
	require.Eventually(t, func() bool {
		r, ok := f.factory.Room(addr)
		return ok && r.Started() && r.Holds(session)
	}, time.Second, 5*time.Millisecond)
	return session
}

func TestIncomingSession_NoMedia(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})

	session := memory.NewInboundSession(uri(t, "sip:alice@example.org"))
	f.orch.IncomingSession(session, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))

	code, rejected := session.RejectedWith()
	req.True(rejected)
	req.Equal(domain.CodeNotAcceptable, code)
	req.Equal(0, f.orch.Snapshot().PendingSessions)
}

func TestIncomingSession_ACLDenied(t *testing.T) {
	req := require.New(t)
	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	allow, err := acl.CompileMatcher("alice@example.org")
	req.NoError(err)
	f := newFixture(t, acl.StaticPolicies{
		room.String(): {Mode: acl.AllowThenDeny, Allow: allow},
	})

	session := memory.NewInboundSession(uri(t, "sip:bob@example.org"), audioStream())
	f.orch.IncomingSession(session, roomRequest(t, "sip:bob@example.org", "sip:conf@example.org"))

	code, rejected := session.RejectedWith()
	req.True(rejected)
	req.Equal(domain.CodeForbidden, code)
}

func TestIncomingSession_AudioRingsThenAccepts(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})

	// Given an attempt proposing both audio and chat
	session := memory.NewInboundSession(uri(t, "sip:alice@example.org"), audioStream(), chatStream())
	f.orch.IncomingSession(session, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))

	// Then it rings immediately and is not yet accepted
	req.True(session.Rang())
	_, _, accepted := session.Accepted()
	req.False(accepted)

	// And the accept lands after the ring delay, audio winning
	req.Eventually(func() bool {
		_, _, accepted := session.Accepted()
		return accepted
	}, time.Second, 5*time.Millisecond)

	streams, isFocus, _ := session.Accepted()
	req.True(isFocus)
	req.Len(streams, 1)
	req.Equal(domain.MediaAudio, streams[0].Kind)
}

func TestIncomingSession_ChatAcceptsWithoutRinging(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})

	session := memory.NewInboundSession(uri(t, "sip:alice@example.org"), chatStream())
	f.orch.IncomingSession(session, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))

	req.Eventually(func() bool {
		_, _, accepted := session.Accepted()
		return accepted
	}, time.Second, 5*time.Millisecond)
	req.False(session.Rang())
}

func TestIncomingSession_StartedCreatesRoom(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})

	joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")

	stats := f.orch.Snapshot()
	req.Equal(1, stats.Rooms)
	req.Equal(1, stats.TrackedSessions)
	req.Equal(0, stats.PendingSessions)
}

func TestIncomingSession_EndedRetiresEmptyRoom(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})
	addr := domain.RoomAddress{User: "conf", Host: "example.org"}

	// Given a room with a single member
	session := joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")
	first, _ := f.factory.Room(addr)

	// When the member hangs up
	session.End()

	// Then the room is stopped and dropped from the registry
	req.Eventually(func() bool {
		return f.orch.Snapshot().Rooms == 0
	}, time.Second, 5*time.Millisecond)
	req.True(first.Stopping())
	req.Equal(0, f.orch.Snapshot().TrackedSessions)

	// And the address is reusable with a fresh room
	joinRoom(t, f, "sip:bob@example.org", "sip:conf@example.org")
	second, ok := f.factory.Room(addr)
	req.True(ok)
	req.NotSame(first, second)
}

func TestIncomingSession_EndedWithoutStarted(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})

	// Given an admitted attempt that dies before confirmation
	session := memory.NewInboundSession(uri(t, "sip:alice@example.org"), chatStream())
	f.orch.IncomingSession(session, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))
	session.End()

	// Then no room ever comes to life and nothing leaks
	req.Eventually(func() bool {
		stats := f.orch.Snapshot()
		return stats.TrackedSessions == 0 && stats.PendingSessions == 0
	}, time.Second, 5*time.Millisecond)
	req.Equal(0, f.orch.Snapshot().Rooms)
}

func TestIncomingSession_FailedBeforeAcceptCancelsTimer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})

	session := memory.NewInboundSession(uri(t, "sip:alice@example.org"), audioStream())
	f.orch.IncomingSession(session, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))
	session.Fail(487, "Request Terminated")

	req.Eventually(func() bool {
		return f.orch.Snapshot().PendingSessions == 0
	}, time.Second, 5*time.Millisecond)

	// The ring timer fires into a void: the attempt is gone.
	time.Sleep(testDelay + 50*time.Millisecond)
	_, _, accepted := session.Accepted()
	req.False(accepted)
}

func TestIncomingSession_FilePullUnknownFile(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})
	joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")

	pull := &domain.Stream{
		Kind:      domain.MediaFileTransfer,
		Direction: domain.SendOnly,
		File:      &domain.FileSelector{Hash: "no-such-hash"},
	}
	session := memory.NewInboundSession(uri(t, "sip:alice@example.org"), pull)
	f.orch.IncomingSession(session, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))

	code, rejected := session.RejectedWith()
	req.True(rejected)
	req.Equal(domain.CodeNotFound, code)
}

func TestIncomingSession_FilePullPopulatesSelector(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})
	addr := domain.RoomAddress{User: "conf", Host: "example.org"}

	// Given a room sharing a file that exists on disk
	joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")
	room, ok := f.factory.Room(addr)
	req.True(ok)
	room.ShareFile(domain.FileRecord{Name: "notes.txt", Hash: "abc123"})

	dir := filepath.Join(f.filesDir, addr.String())
	req.NoError(os.MkdirAll(dir, 0o755))
	req.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("minutes of the call"), 0o644))

	// When a participant pulls it by hash
	pull := &domain.Stream{
		Kind:      domain.MediaFileTransfer,
		Direction: domain.SendOnly,
		File:      &domain.FileSelector{Hash: "abc123"},
	}
	session := memory.NewInboundSession(uri(t, "sip:bob@example.org"), pull)
	f.orch.IncomingSession(session, roomRequest(t, "sip:bob@example.org", "sip:conf@example.org"))

	req.Eventually(func() bool {
		_, _, accepted := session.Accepted()
		return accepted
	}, time.Second, 5*time.Millisecond)

	streams, _, _ := session.Accepted()
	req.Len(streams, 1)
	req.Equal(int64(19), streams[0].File.Size)
	req.Contains(streams[0].File.ContentType, "text/plain")
}

func TestIncomingSubscription(t *testing.T) {
	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	allowAlice := func(t *testing.T) acl.StaticPolicies {
		allow, err := acl.CompileMatcher("alice@example.org")
		require.NoError(t, err)
		return acl.StaticPolicies{room.String(): {Mode: acl.AllowThenDeny, Allow: allow}}
	}

	t.Run("missing headers", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, acl.StaticPolicies{})

		sub := memory.NewSubscribeRequest()
		f.orch.IncomingSubscription(sub, domain.Request{URI: uri(t, "sip:conf@example.org")})

		code, rejected := sub.RejectedWith()
		req.True(rejected)
		req.Equal(domain.CodeBadRequest, code)
	})

	t.Run("denied watcher", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, allowAlice(t))
		joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")

		sub := memory.NewSubscribeRequest()
		f.orch.IncomingSubscription(sub, roomRequest(t, "sip:bob@example.org", "sip:conf@example.org"))

		code, rejected := sub.RejectedWith()
		req.True(rejected)
		req.Equal(domain.CodeForbidden, code)
	})

	t.Run("no live room", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, acl.StaticPolicies{})

		sub := memory.NewSubscribeRequest()
		f.orch.IncomingSubscription(sub, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))

		code, rejected := sub.RejectedWith()
		req.True(rejected)
		req.Equal(domain.CodeTemporarilyUnavailable, code)
	})

	t.Run("admitted watcher reaches the room", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, acl.StaticPolicies{})
		joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")

		sub := memory.NewSubscribeRequest()
		f.orch.IncomingSubscription(sub, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))

		_, rejected := sub.RejectedWith()
		req.False(rejected)
		r, _ := f.factory.Room(room)
		req.Equal(1, r.Subscriptions())
	})

	t.Run("invited identity bypasses ACL", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, allowAlice(t))
		joinRoom(t, f, "sip:alice@example.org", "sip:conf@example.org")

		// Given bob was invited by the room itself
		outbound := memory.NewOutboundSession(uri(t, "sip:bob@example.org"), audioStream())
		f.orch.AddParticipant(outbound, room)

		sub := memory.NewSubscribeRequest()
		f.orch.IncomingSubscription(sub, roomRequest(t, "sip:bob@example.org", "sip:conf@example.org"))

		_, rejected := sub.RejectedWith()
		req.False(rejected)
	})
}

func TestIncomingMessage(t *testing.T) {
	f := newFixture(t, acl.StaticPolicies{})
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msg := mocks.NewMockMessageRequest(ctrl)
	msg.EXPECT().Answer(405).Times(1)

	f.orch.IncomingMessage(msg)
}

func TestIncomingSession_ConcurrentSameRoom(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, acl.StaticPolicies{})
	const members = 8

	var wg sync.WaitGroup
	sessions := make([]*memory.Session, members)
	for i := range sessions {
		sessions[i] = memory.NewInboundSession(uri(t, "sip:alice@example.org"), chatStream())
		wg.Add(1)
		go func(s *memory.Session) {
			defer wg.Done()
			f.orch.IncomingSession(s, roomRequest(t, "sip:alice@example.org", "sip:conf@example.org"))
			s.Confirm()
		}(sessions[i])
	}
	wg.Wait()

	req.Eventually(func() bool {
		stats := f.orch.Snapshot()
		return stats.Rooms == 1 && stats.TrackedSessions == members
	}, time.Second, 5*time.Millisecond)

	room, ok := f.factory.Room(domain.RoomAddress{User: "conf", Host: "example.org"})
	req.True(ok)
	for _, s := range sessions {
		req.True(room.Holds(s))
	}
}
