package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
)

const userColumns = `id::text, firstname, lastname, dateofbirth, nationality, sexe,
	role, email, phone, password, secret, confirmed, is_deleted, created_at`

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, u user.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (firstname, lastname, dateofbirth, nationality, sexe,
		                   role, email, phone, password, secret, confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id::text
	`, u.Firstname, u.Lastname, u.DateOfBirth, u.Nationality, u.Sexe,
		u.Role, u.Email, u.Phone, u.PasswordHash, u.SecretHash, u.Confirmed, u.CreatedAt).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return "", user.ErrDuplicate
	}
	return id, err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, "id::text = $1", id)
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *PgUserRepository) GetByPhone(ctx context.Context, phone string) (user.User, error) {
	return r.getOne(ctx, "phone = $1", phone)
}

func (r *PgUserRepository) List(ctx context.Context) ([]user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_deleted = false ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgUserRepository) SetConfirmed(ctx context.Context, phone string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx,
		`UPDATE users SET confirmed = true WHERE phone = $1 AND is_deleted = false`, phone)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PgUserRepository) getOne(ctx context.Context, where string, arg any) (user.User, error) {
	if r == nil || r.pool == nil {
		return user.User{}, errors.New("PgUserRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where+` AND is_deleted = false`, arg)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.DateOfBirth, &u.Nationality, &u.Sexe,
		&u.Role, &u.Email, &u.Phone, &u.PasswordHash, &u.SecretHash, &u.Confirmed, &u.IsDeleted, &u.CreatedAt)
	return u, err
}
