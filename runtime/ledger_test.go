package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"confgw/domain"
)

func TestLedger_GrantAndRelease(t *testing.T) {
	req := require.New(t)
	ledger := NewParticipantLedger()
	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	bob := domain.URI{Scheme: "sip", User: "bob", Host: "example.org"}

	// Given bob invited twice into the same room
	ledger.Grant(room, bob)
	ledger.Grant(room, bob)
	req.True(ledger.Invited(room, bob))
	req.Equal(uint(2), ledger.Count(room, bob))

	// When one of his sessions ends, the grant survives
	ledger.Release(room, bob)
	req.True(ledger.Invited(room, bob))
	req.Equal(uint(1), ledger.Count(room, bob))

	// When the last session ends, the grant disappears
	ledger.Release(room, bob)
	req.False(ledger.Invited(room, bob))
	req.Equal(uint(0), ledger.Count(room, bob))
	req.Equal(0, ledger.Size())
}

func TestLedger_ReleaseAbsentGrant(t *testing.T) {
	req := require.New(t)
	ledger := NewParticipantLedger()
	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	bob := domain.URI{Scheme: "sip", User: "bob", Host: "example.org"}

	ledger.Release(room, bob)
	req.False(ledger.Invited(room, bob))

	// The count never goes negative: a grant after a spurious release
	// counts exactly one.
	ledger.Grant(room, bob)
	req.Equal(uint(1), ledger.Count(room, bob))
}

func TestLedger_GrantsAreScopedPerRoom(t *testing.T) {
	req := require.New(t)
	ledger := NewParticipantLedger()
	roomA := domain.RoomAddress{User: "a", Host: "example.org"}
	roomB := domain.RoomAddress{User: "b", Host: "example.org"}
	bob := domain.URI{Scheme: "sip", User: "bob", Host: "example.org"}

	ledger.Grant(roomA, bob)
	req.True(ledger.Invited(roomA, bob))
	req.False(ledger.Invited(roomB, bob))
	req.Equal(1, ledger.Size())
}
