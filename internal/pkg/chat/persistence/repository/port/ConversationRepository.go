package repository

import (
	"context"

	chat "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/domain"
)

// ConversationRepository defines persistence operations for rooms and their
// message log. Single-document writes are atomic at the store level; no
// multi-document transactions are used.
type ConversationRepository interface {
	// EnsureRoom finds the room by exact name, creating it when absent.
	// Safe to call concurrently for the same name: a concurrent duplicate
	// create degrades to "room now exists", never to two records.
	EnsureRoom(ctx context.Context, name string) (chat.Room, error)

	// GetRoomByName returns chat.ErrRoomNotFound when no room has the name.
	GetRoomByName(ctx context.Context, name string) (chat.Room, error)

	// SaveMessage appends one immutable message and returns its id.
	SaveMessage(ctx context.Context, m chat.Message) (string, error)

	// ListMessagesByRoom returns the room's messages oldest first, with
	// sender display identity resolved. An unknown room yields an empty
	// slice, not an error.
	ListMessagesByRoom(ctx context.Context, room string) ([]chat.Message, error)
}
