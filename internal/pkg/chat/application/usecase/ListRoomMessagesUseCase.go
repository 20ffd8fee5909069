package usecase

import (
	"context"
	"fmt"

	chat "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/persistence/repository/port"
)

// ListRoomMessagesInput wraps the room name whose history is requested.
type ListRoomMessagesInput struct {
	Room string
}

// ListRoomMessagesUseCase returns a room's messages oldest first, with sender
// display identity resolved. A room with no messages yields an empty slice.
type ListRoomMessagesUseCase struct {
	Repo repository.ConversationRepository
}

func NewListRoomMessagesUseCase(repo repository.ConversationRepository) *ListRoomMessagesUseCase {
	return &ListRoomMessagesUseCase{Repo: repo}
}

func (uc *ListRoomMessagesUseCase) Execute(ctx context.Context, in ListRoomMessagesInput) ([]chat.Message, error) {
	if in.Room == "" {
		return nil, fmt.Errorf("room is required")
	}
	msgs, err := uc.Repo.ListMessagesByRoom(ctx, in.Room)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
