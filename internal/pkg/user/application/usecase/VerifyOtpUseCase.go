package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/port"
)

// ErrInvalidOtp signals a wrong personal secret code.
var ErrInvalidOtp = errors.New("user: invalid secret code")

// VerifyOtpInput carries the phone/code pair presented for account confirmation.
type VerifyOtpInput struct {
	Phone string
	Otp   string
}

// VerifyOtpUseCase checks the presented one-time code against the stored
// secret hash and marks the account confirmed on success.
type VerifyOtpUseCase struct {
	Repo repository.UserRepository
}

func NewVerifyOtpUseCase(repo repository.UserRepository) *VerifyOtpUseCase {
	return &VerifyOtpUseCase{Repo: repo}
}

func (uc *VerifyOtpUseCase) Execute(ctx context.Context, in VerifyOtpInput) error {
	if in.Phone == "" || in.Otp == "" {
		return fmt.Errorf("phone and otp are required")
	}

	u, err := uc.Repo.GetByPhone(ctx, in.Phone)
	if errors.Is(err, user.ErrNotFound) {
		return user.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.SecretHash), []byte(in.Otp)) != nil {
		return ErrInvalidOtp
	}

	if err := uc.Repo.SetConfirmed(ctx, in.Phone); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
