package usecase

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	notiftask "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/application/task"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/port"
)

var validate = validator.New()

// RegisterUserInput carries the registration payload. Field rules mirror the
// account model: phone and email are identities, sexe is M/F, the role
// defaults to PASSENGER.
type RegisterUserInput struct {
	Firstname   string    `validate:"required"`
	Lastname    string    `validate:"required"`
	DateOfBirth time.Time `validate:"-"`
	Nationality string    `validate:"-"`
	Sexe        string    `validate:"omitempty,oneof=M F"`
	Email       string    `validate:"required,email"`
	Password    string    `validate:"required,min=6"`
	Phone       string    `validate:"required"`
	Role        string    `validate:"-"`
}

// RegisterUserUseCase creates an account: hashes the password, generates a
// one-time secret (hashed at rest), stores the user and enqueues the
// verification email carrying the plain secret.
type RegisterUserUseCase struct {
	Repo  repository.UserRepository
	Queue qport.Client // nil disables the verification email
	Log   *slog.Logger
}

func NewRegisterUserUseCase(repo repository.UserRepository, queue qport.Client, log *slog.Logger) *RegisterUserUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &RegisterUserUseCase{Repo: repo, Queue: queue, Log: log}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*user.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid registration data: %w", err)
	}

	role := user.Role(in.Role)
	if in.Role == "" {
		role = user.RolePassenger
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid user role %q", in.Role)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	secretHash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	u := user.User{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		DateOfBirth:  in.DateOfBirth,
		Nationality:  in.Nationality,
		Sexe:         in.Sexe,
		Role:         role,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(passwordHash),
		SecretHash:   string(secretHash),
		CreatedAt:    time.Now().UTC(),
	}

	id, err := uc.Repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	u.ID = id

	uc.sendVerificationEmail(ctx, u, otp)

	return &u, nil
}

// sendVerificationEmail is best effort: a queue outage must not lose the
// freshly created account.
func (uc *RegisterUserUseCase) sendVerificationEmail(ctx context.Context, u user.User, otp string) {
	if uc.Queue == nil {
		return
	}
	payload, err := json.Marshal(notiftask.SendEmailTaskPayload{
		To:        u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Secret:    otp,
	})
	if err != nil {
		uc.Log.Error("encode verification email task", "err", err)
		return
	}
	_, err = uc.Queue.Enqueue(ctx,
		qport.Task{Type: notiftask.SendEmailTaskType, Payload: payload},
		qport.EnqueueOption{Queue: "notifications", MaxRetry: 10},
	)
	if err != nil {
		uc.Log.Error("enqueue verification email", "user", u.ID, "err", err)
	}
}

// generateOTP returns a six digit one-time code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
