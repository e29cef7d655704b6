package runtime

import "confgw/domain"

// ParticipantLedger reference-counts the identities a room itself
// invited. It is a capability grant, not a membership record: its only
// purpose is to let subscriptions from invited identities bypass ACL.
// Like the registry it is a plain store serialized by the orchestrator.
type ParticipantLedger struct {
	grants map[string]map[string]uint
}

func NewParticipantLedger() *ParticipantLedger {
	return &ParticipantLedger{grants: make(map[string]map[string]uint)}
}

// Grant records one outbound invite of identity into room.
func (l *ParticipantLedger) Grant(room domain.RoomAddress, identity domain.URI) {
	key := room.String()
	if l.grants[key] == nil {
		l.grants[key] = make(map[string]uint)
	}
	l.grants[key][identity.Identity()]++
}

// Release drops one reference; the entry disappears at zero and the
// room's map disappears with its last entry. Releasing an absent grant
// is a no-op, the count never goes negative.
func (l *ParticipantLedger) Release(room domain.RoomAddress, identity domain.URI) {
	key := room.String()
	byIdentity, ok := l.grants[key]
	if !ok {
		return
	}
	id := identity.Identity()
	count, ok := byIdentity[id]
	if !ok {
		return
	}
	if count <= 1 {
		delete(byIdentity, id)
		if len(byIdentity) == 0 {
			delete(l.grants, key)
		}
		return
	}
	byIdentity[id] = count - 1
}

// Invited reports whether identity currently holds a grant for room.
func (l *ParticipantLedger) Invited(room domain.RoomAddress, identity domain.URI) bool {
	return l.grants[room.String()][identity.Identity()] > 0
}

// Count returns the current reference count, zero when absent.
func (l *ParticipantLedger) Count(room domain.RoomAddress, identity domain.URI) uint {
	return l.grants[room.String()][identity.Identity()]
}

// Size returns the number of live (room, identity) entries.
func (l *ParticipantLedger) Size() int {
	n := 0
	for _, byIdentity := range l.grants {
		n += len(byIdentity)
	}
	return n
}
