package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/domain"
)

type PgSMSRepository struct {
	pool *pgxpool.Pool
}

func NewPgSMSRepository(pool *pgxpool.Pool) *PgSMSRepository {
	return &PgSMSRepository{pool: pool}
}

func (r *PgSMSRepository) Save(ctx context.Context, s notification.SMS) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgSMSRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO sms (intitule, contenu, receivers, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, s.Title, s.Content, s.Receivers, s.Date).Scan(&id)
	return id, err
}

func (r *PgSMSRepository) List(ctx context.Context) ([]notification.SMS, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSMSRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, intitule, contenu, COALESCE(receivers, '{}'), date FROM sms ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []notification.SMS
	for rows.Next() {
		var s notification.SMS
		if err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.Receivers, &s.Date); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
