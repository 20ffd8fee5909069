package usecase

import (
	"context"
	"fmt"

	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/port"
)

// ListUsersUseCase returns every non-deleted account.
type ListUsersUseCase struct {
	Repo repository.UserRepository
}

func NewListUsersUseCase(repo repository.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{Repo: repo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]user.User, error) {
	users, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return users, nil
}
