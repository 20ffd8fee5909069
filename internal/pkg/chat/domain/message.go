package chat

import (
	"errors"
	"strings"
	"time"
)

// Sender is the display identity of a message author, resolved from the user
// record at read time.
type Sender struct {
	ID        string `db:"id"`
	Firstname string `db:"firstname"`
	Lastname  string `db:"lastname"`
	Phone     string `db:"phone"`
}

// Message is an immutable log entry in a room's conversation. There is no
// update or delete path once a message is stored.
type Message struct {
	ID        string    `db:"id"`
	Room      string    `db:"room_name"`
	SenderID  string    `db:"user_id"`
	Text      string    `db:"message"`
	Timestamp time.Time `db:"created_at"`

	// Sender is populated on reads only; nil when the user record is gone.
	Sender *Sender `db:"-"`
}

// NewMessage validates and normalizes a message ready to persist. Room and
// sender are required at write time; the timestamp defaults to now.
func NewMessage(room, senderID, text string) (Message, error) {
	if room == "" || senderID == "" {
		return Message{}, errors.New("chat: room and sender are required")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, errors.New("chat: message text is required")
	}
	return Message{
		Room:      room,
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}, nil
}
