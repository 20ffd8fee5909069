package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	notiftask "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/application/task"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
)

type memoryUserRepo struct {
	users     map[string]user.User // keyed by id
	createErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]user.User)}
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	for _, existing := range m.users {
		if existing.Email == u.Email || existing.Phone == u.Phone {
			return "", user.ErrDuplicate
		}
	}
	u.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	m.users[u.ID] = u
	return u.ID, nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok || u.IsDeleted {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email && !u.IsDeleted {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) GetByPhone(_ context.Context, phone string) (user.User, error) {
	for _, u := range m.users {
		if u.Phone == phone && !u.IsDeleted {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) List(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		if !u.IsDeleted {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryUserRepo) SetConfirmed(_ context.Context, phone string) error {
	for id, u := range m.users {
		if u.Phone == phone {
			u.Confirmed = true
			m.users[id] = u
			return nil
		}
	}
	return user.ErrNotFound
}

// recordingQueue captures enqueued tasks.
type recordingQueue struct {
	tasks []qport.Task
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, t qport.Task, _ ...qport.EnqueueOption) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	q.tasks = append(q.tasks, t)
	return fmt.Sprintf("task-%d", len(q.tasks)), nil
}

func (q *recordingQueue) Close() error { return nil }

func registrationInput() RegisterUserInput {
	return RegisterUserInput{
		Firstname: "Moussa",
		Lastname:  "Diallo",
		Sexe:      "M",
		Email:     "moussa@example.com",
		Password:  "s3cretpass",
		Phone:     "+221770000001",
	}
}

func TestRegisterUserStoresHashedSecrets(t *testing.T) {
	repo := newMemoryUserRepo()
	queue := &recordingQueue{}
	uc := NewRegisterUserUseCase(repo, queue, nil)

	u, err := uc.Execute(context.Background(), registrationInput())
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	stored := repo.users[u.ID]
	assert.Equal(t, user.RolePassenger, stored.Role, "role defaults to passenger")
	assert.False(t, stored.Confirmed)

	// neither the password nor the secret is stored in clear
	assert.NotEqual(t, "s3cretpass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cretpass")))
	assert.NotEmpty(t, stored.SecretHash)
}

func TestRegisterUserEnqueuesVerificationEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	queue := &recordingQueue{}
	uc := NewRegisterUserUseCase(repo, queue, nil)

	u, err := uc.Execute(context.Background(), registrationInput())
	require.NoError(t, err)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, notiftask.SendEmailTaskType, queue.tasks[0].Type)

	var payload notiftask.SendEmailTaskPayload
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload, &payload))
	assert.Equal(t, u.Email, payload.To)
	require.Len(t, payload.Secret, 6)

	// the mailed code matches the stored hash
	stored := repo.users[u.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SecretHash), []byte(payload.Secret)))
}

func TestRegisterUserSurvivesQueueOutage(t *testing.T) {
	repo := newMemoryUserRepo()
	queue := &recordingQueue{err: errors.New("redis down")}
	uc := NewRegisterUserUseCase(repo, queue, nil)

	u, err := uc.Execute(context.Background(), registrationInput())
	require.NoError(t, err, "a queue outage must not lose the account")
	assert.Contains(t, repo.users, u.ID)
}

func TestRegisterUserRejectsDuplicate(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewRegisterUserUseCase(repo, nil, nil)

	_, err := uc.Execute(context.Background(), registrationInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), registrationInput())
	assert.ErrorIs(t, err, user.ErrDuplicate)
}

func TestRegisterUserValidation(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewRegisterUserUseCase(repo, nil, nil)

	cases := []struct {
		name   string
		mutate func(*RegisterUserInput)
	}{
		{"missing email", func(in *RegisterUserInput) { in.Email = "" }},
		{"malformed email", func(in *RegisterUserInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterUserInput) { in.Password = "abc" }},
		{"missing phone", func(in *RegisterUserInput) { in.Phone = "" }},
		{"bad sexe", func(in *RegisterUserInput) { in.Sexe = "X" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := registrationInput()
			tc.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.Empty(t, repo.users)
		})
	}
}

func TestRegisterUserRejectsUnknownRole(t *testing.T) {
	uc := NewRegisterUserUseCase(newMemoryUserRepo(), nil, nil)

	in := registrationInput()
	in.Role = "OVERLORD"
	_, err := uc.Execute(context.Background(), in)
	assert.Error(t, err)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newMemoryUserRepo()
	registerUC := NewRegisterUserUseCase(repo, nil, nil)
	_, err := registerUC.Execute(context.Background(), registrationInput())
	require.NoError(t, err)

	issuer := token.NewIssuer("test-secret", time.Hour)
	loginUC := NewLoginUserUseCase(repo, issuer)

	res, err := loginUC.Execute(context.Background(), LoginUserInput{
		Email:    "moussa@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims, err := issuer.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, string(user.RolePassenger), claims.Role)
}

func TestLoginHidesWhichCredentialFailed(t *testing.T) {
	repo := newMemoryUserRepo()
	registerUC := NewRegisterUserUseCase(repo, nil, nil)
	_, err := registerUC.Execute(context.Background(), registrationInput())
	require.NoError(t, err)

	loginUC := NewLoginUserUseCase(repo, token.NewIssuer("test-secret", time.Hour))

	_, unknownErr := loginUC.Execute(context.Background(), LoginUserInput{
		Email: "ghost@example.com", Password: "whatever",
	})
	_, wrongErr := loginUC.Execute(context.Background(), LoginUserInput{
		Email: "moussa@example.com", Password: "wrong-pass",
	})

	assert.ErrorIs(t, unknownErr, user.ErrCredentials)
	assert.ErrorIs(t, wrongErr, user.ErrCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestVerifyOtpConfirmsAccount(t *testing.T) {
	repo := newMemoryUserRepo()
	queue := &recordingQueue{}
	registerUC := NewRegisterUserUseCase(repo, queue, nil)

	u, err := registerUC.Execute(context.Background(), registrationInput())
	require.NoError(t, err)

	var payload notiftask.SendEmailTaskPayload
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload, &payload))

	verifyUC := NewVerifyOtpUseCase(repo)
	require.NoError(t, verifyUC.Execute(context.Background(), VerifyOtpInput{
		Phone: u.Phone,
		Otp:   payload.Secret,
	}))
	assert.True(t, repo.users[u.ID].Confirmed)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	repo := newMemoryUserRepo()
	registerUC := NewRegisterUserUseCase(repo, nil, nil)
	u, err := registerUC.Execute(context.Background(), registrationInput())
	require.NoError(t, err)

	verifyUC := NewVerifyOtpUseCase(repo)
	err = verifyUC.Execute(context.Background(), VerifyOtpInput{Phone: u.Phone, Otp: "000000"})
	assert.ErrorIs(t, err, ErrInvalidOtp)
	assert.False(t, repo.users[u.ID].Confirmed)
}

func TestVerifyOtpUnknownPhone(t *testing.T) {
	verifyUC := NewVerifyOtpUseCase(newMemoryUserRepo())
	err := verifyUC.Execute(context.Background(), VerifyOtpInput{Phone: "+221770009999", Otp: "123456"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}
