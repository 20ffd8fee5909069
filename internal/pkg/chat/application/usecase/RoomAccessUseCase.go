package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/persistence/repository/port"
)

// RoomAccessInput validates a request to join or send into a room.
type RoomAccessInput struct {
	Room   string
	UserID string
}

// RoomAccessUseCase checks the authenticated principal against the room's
// participant list before a subscribe or a room-scoped message is honored.
// A room that does not exist yet, or that carries no participant list, is
// open to any authenticated user.
type RoomAccessUseCase struct {
	Repo repository.ConversationRepository
}

func NewRoomAccessUseCase(repo repository.ConversationRepository) *RoomAccessUseCase {
	return &RoomAccessUseCase{Repo: repo}
}

func (uc *RoomAccessUseCase) Execute(ctx context.Context, in RoomAccessInput) error {
	if in.Room == "" || in.UserID == "" {
		return fmt.Errorf("room and user are required")
	}

	room, err := uc.Repo.GetRoomByName(ctx, in.Room)
	if errors.Is(err, chat.ErrRoomNotFound) {
		// Lazily created on first message; nothing to restrict yet.
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if !room.HasParticipant(in.UserID) {
		return chat.ErrNotParticipant
	}
	return nil
}
