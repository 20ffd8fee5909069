package usecase

import (
	"context"
	"fmt"

	chat "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/persistence/repository/port"
)

// AppendMessageInput carries the data needed to append one message to a room's
// conversation log.
type AppendMessageInput struct {
	Room     string
	SenderID string
	Text     string
}

// AppendMessageUseCase ensures the target room exists, then persists one
// immutable message. The room-creation side effect is not rolled back when the
// message write fails; at-least-once room creation is acceptable.
type AppendMessageUseCase struct {
	Repo repository.ConversationRepository
}

func NewAppendMessageUseCase(repo repository.ConversationRepository) *AppendMessageUseCase {
	return &AppendMessageUseCase{Repo: repo}
}

func (uc *AppendMessageUseCase) Execute(ctx context.Context, in AppendMessageInput) (*chat.Message, error) {
	msg, err := chat.NewMessage(in.Room, in.SenderID, in.Text)
	if err != nil {
		return nil, err
	}

	if _, err := uc.Repo.EnsureRoom(ctx, in.Room); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	id, err := uc.Repo.SaveMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id
	return &msg, nil
}
