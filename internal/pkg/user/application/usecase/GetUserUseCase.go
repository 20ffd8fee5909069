package usecase

import (
	"context"
	"fmt"

	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/port"
)

// GetUserInput selects an account by id or by email; exactly one must be set.
type GetUserInput struct {
	ID    string
	Email string
}

// GetUserUseCase fetches one account.
type GetUserUseCase struct {
	Repo repository.UserRepository
}

func NewGetUserUseCase(repo repository.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{Repo: repo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, in GetUserInput) (*user.User, error) {
	var (
		u   user.User
		err error
	)
	switch {
	case in.ID != "":
		u, err = uc.Repo.GetByID(ctx, in.ID)
	case in.Email != "":
		u, err = uc.Repo.GetByEmail(ctx, in.Email)
	default:
		return nil, fmt.Errorf("id or email is required")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
