package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/port"
)

// LoginUserInput carries the credentials presented at login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserResult is the authenticated account plus its access token.
type LoginUserResult struct {
	User  user.User
	Token string
}

// LoginUserUseCase verifies credentials and issues an access token. Unknown
// accounts and wrong passwords are indistinguishable to the caller.
type LoginUserUseCase struct {
	Repo   repository.UserRepository
	Issuer *token.Issuer
}

func NewLoginUserUseCase(repo repository.UserRepository, issuer *token.Issuer) *LoginUserUseCase {
	return &LoginUserUseCase{Repo: repo, Issuer: issuer}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, in LoginUserInput) (*LoginUserResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	u, err := uc.Repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, user.ErrNotFound) {
		return nil, user.ErrCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, user.ErrCredentials
	}

	tok, err := uc.Issuer.Issue(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginUserResult{User: u, Token: tok}, nil
}
