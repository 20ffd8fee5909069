package chat

import "errors"

// Domain-level errors for conversation behaviors.
var (
	ErrRoomNotFound   = errors.New("chat: room not found")
	ErrNotParticipant = errors.New("chat: user is not a participant of the room")
)

// Room is a named logical channel that sessions can join to scope message
// delivery. A room record exists for every name that has ever received a
// message; creation is idempotent and rooms are never deleted.
type Room struct {
	ID           string   `db:"id"`
	Name         string   `db:"name"`
	Participants []string `db:"participants"`
}

// Open reports whether the room accepts any authenticated user. A room with
// no participant list is open; otherwise membership is required.
func (r Room) Open() bool {
	return len(r.Participants) == 0
}

// HasParticipant tells whether userID is allowed into this room.
func (r Room) HasParticipant(userID string) bool {
	if r.Open() {
		return true
	}
	for _, id := range r.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
