package realtime

import (
	"log/slog"
	"sync"
)

// Hub is the room-membership index: it tracks live sessions and which logical
// rooms each has joined, and fans payloads out either to one room's members or
// to every connected session. Membership is connection-scoped and vanishes
// when the session detaches; nothing here is persisted.
//
// Fan-out is best effort. A failed send to one session never affects delivery
// to the others.
type Hub struct {
	mu           sync.RWMutex
	log          *slog.Logger
	sessions     map[string]Session            // sessionID -> session
	rooms        map[string]map[string]Session // room name -> sessionID -> session
	sessionRooms map[string]map[string]struct{}
}

// NewHub constructs an initialized Hub.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		log:          log,
		sessions:     make(map[string]Session),
		rooms:        make(map[string]map[string]Session),
		sessionRooms: make(map[string]map[string]struct{}),
	}
}

// Attach registers a session with the hub.
func (h *Hub) Attach(s Session) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	h.sessionRooms[s.ID()] = make(map[string]struct{})
	h.mu.Unlock()
}

// Detach removes a session and implicitly releases all its room memberships.
func (h *Hub) Detach(s Session) {
	h.mu.Lock()
	if _, ok := h.sessions[s.ID()]; ok {
		delete(h.sessions, s.ID())
		for room := range h.sessionRooms[s.ID()] {
			h.leaveLocked(room, s.ID())
		}
		delete(h.sessionRooms, s.ID())
	}
	h.mu.Unlock()
}

// Join adds the session to the named room. Unknown sessions are ignored.
func (h *Hub) Join(room string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s.ID()]; !ok {
		return
	}

	members := h.rooms[room]
	if members == nil {
		members = make(map[string]Session)
		h.rooms[room] = members
	}
	members[s.ID()] = s

	memberships := h.sessionRooms[s.ID()]
	if memberships == nil {
		memberships = make(map[string]struct{})
		h.sessionRooms[s.ID()] = memberships
	}
	memberships[room] = struct{}{}
}

// Leave removes the session from the named room.
func (h *Hub) Leave(room string, s Session) {
	h.mu.Lock()
	h.leaveLocked(room, s.ID())
	h.mu.Unlock()
}

// InRoom reports whether the session currently belongs to the room.
func (h *Hub) InRoom(room string, sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[room][sessionID]
	return ok
}

// BroadcastRoom delivers payload to every session joined to the room,
// including the sender when it is a member. Returns the number of sessions
// the payload was handed to.
func (h *Hub) BroadcastRoom(room string, payload []byte) int {
	h.mu.RLock()
	members := h.rooms[room]
	delivered := 0
	for _, s := range members {
		if err := s.Send(payload); err != nil {
			h.log.Debug("room delivery dropped", "room", room, "session", s.ID(), "err", err)
			continue
		}
		delivered++
	}
	h.mu.RUnlock()
	return delivered
}

// BroadcastAll delivers payload to every connected session regardless of room
// membership. This is the explicit broadcast mode; room fan-out never falls
// back to it implicitly.
func (h *Hub) BroadcastAll(payload []byte) int {
	h.mu.RLock()
	delivered := 0
	for _, s := range h.sessions {
		if err := s.Send(payload); err != nil {
			h.log.Debug("broadcast delivery dropped", "session", s.ID(), "err", err)
			continue
		}
		delivered++
	}
	h.mu.RUnlock()
	return delivered
}

// Rooms returns a snapshot of the room membership table mapping room names to
// session IDs, for diagnostics.
func (h *Hub) Rooms() map[string][]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	snapshot := make(map[string][]string, len(h.rooms))
	for room, members := range h.rooms {
		ids := make([]string, 0, len(members))
		for id := range members {
			ids = append(ids, id)
		}
		snapshot[room] = ids
	}
	return snapshot
}

func (h *Hub) leaveLocked(room string, sessionID string) {
	members := h.rooms[room]
	if members == nil {
		return
	}
	delete(members, sessionID)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
	if memberships, ok := h.sessionRooms[sessionID]; ok {
		delete(memberships, room)
	}
}
