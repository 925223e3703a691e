package realtime

import (
	"sync"
)

// Registry tracks which physical connections belong to which conversation
// room, and which connections currently represent which identity. Rooms are
// indexed both ways (room -> connections, connection -> rooms) so broadcast
// and disconnect cleanup each stay proportional to their own fan-out.
//
// All state is process-local; a multi-instance deployment would need an
// external pub/sub implementation behind the same interface.
type Registry struct {
	mu        sync.RWMutex
	rooms     map[string]map[string]*Conn
	connRooms map[string]map[string]struct{}
	presence  map[string]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:     make(map[string]map[string]*Conn),
		connRooms: make(map[string]map[string]struct{}),
		presence:  make(map[string]map[string]struct{}),
	}
}

// AddToRoom is idempotent: re-adding a connection already in the room is a no-op.
func (r *Registry) AddToRoom(roomID string, conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms[roomID]
	if room == nil {
		room = make(map[string]*Conn)
		r.rooms[roomID] = room
	}
	room[conn.ID] = conn

	memberships := r.connRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		r.connRooms[conn.ID] = memberships
	}
	memberships[roomID] = struct{}{}
}

// RemoveFromRoom drops the connection from the room. Leaving an unjoined
// room is a harmless no-op.
func (r *Registry) RemoveFromRoom(roomID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeFromRoomLocked(roomID, connID)
}

// ConnectionsInRoom returns a snapshot of the room's current members.
func (r *Registry) ConnectionsInRoom(roomID string) []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[roomID]
	if len(room) == 0 {
		return nil
	}

	conns := make([]*Conn, 0, len(room))
	for _, conn := range room {
		conns = append(conns, conn)
	}

	return conns
}

// RemoveConnection removes the connection from every room and every presence
// set it was tracked under.
func (r *Registry) RemoveConnection(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomID := range r.connRooms[connID] {
		r.removeFromRoomLocked(roomID, connID)
	}
	delete(r.connRooms, connID)

	for identityID, conns := range r.presence {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(r.presence, identityID)
		}
	}
}

// TrackPresence records that the connection currently represents the identity.
// Multiple simultaneous connections per identity are permitted.
func (r *Registry) TrackPresence(identityID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns := r.presence[identityID]
	if conns == nil {
		conns = make(map[string]struct{})
		r.presence[identityID] = conns
	}
	conns[connID] = struct{}{}
}

// ReleasePresence removes the connection from the identity's presence set,
// dropping the entry entirely when the set becomes empty.
func (r *Registry) ReleasePresence(identityID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns := r.presence[identityID]
	if conns == nil {
		return
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(r.presence, identityID)
	}
}

func (r *Registry) removeFromRoomLocked(roomID, connID string) {
	room := r.rooms[roomID]
	if room == nil {
		return
	}
	delete(room, connID)
	if len(room) == 0 {
		delete(r.rooms, roomID)
	}

	if memberships, ok := r.connRooms[connID]; ok {
		delete(memberships, roomID)
		if len(memberships) == 0 {
			delete(r.connRooms, connID)
		}
	}
}
