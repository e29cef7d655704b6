package runtime

import (
	"confgw/contract"
	"confgw/domain"
	"confgw/errors"
)

// RoomRegistry maps canonical room addresses onto live Room handles.
// It is a plain keyed store: every call site funnels through the
// orchestrator, which serializes access.
type RoomRegistry struct {
	factory contract.RoomFactory
	rooms   map[string]contract.Room
}

func NewRoomRegistry(factory contract.RoomFactory) *RoomRegistry {
	return &RoomRegistry{
		factory: factory,
		rooms:   make(map[string]contract.Room),
	}
}

// Get returns the room for an address, or errors.ErrRoomNotFound.
func (r *RoomRegistry) Get(addr domain.RoomAddress) (contract.Room, error) {
	room, ok := r.rooms[addr.String()]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	return room, nil
}

// GetOrCreate returns the room for an address, creating it through the
// room factory on first use.
func (r *RoomRegistry) GetOrCreate(addr domain.RoomAddress) contract.Room {
	key := addr.String()
	if room, ok := r.rooms[key]; ok {
		return room
	}
	room := r.factory.NewRoom(addr)
	r.rooms[key] = room
	return room
}

// Remove drops the address from the registry; no-op when absent.
func (r *RoomRegistry) Remove(addr domain.RoomAddress) {
	delete(r.rooms, addr.String())
}

func (r *RoomRegistry) Len() int {
	return len(r.rooms)
}
