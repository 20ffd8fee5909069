package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	review "github.com/MdialloC19/backend-IPDL/internal/pkg/review/domain"
)

type PgReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

func (r *PgReviewRepository) Save(ctx context.Context, rv review.Review) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reviews (reviewer_id, reviewee_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		rv.ReviewerID, rv.RevieweeID, rv.Rating, rv.Comment, rv.CreatedAt,
	).Scan(&id)
	return id, err
}

func (r *PgReviewRepository) ListByReviewee(ctx context.Context, revieweeID string) ([]review.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT rv.id, rv.reviewer_id, rv.reviewee_id, rv.rating, rv.comment, rv.created_at,
		        COALESCE(TRIM(u.firstname || ' ' || u.lastname), '')
		 FROM reviews rv
		 LEFT JOIN users u ON u.id::text = rv.reviewer_id AND u.is_deleted = false
		 WHERE rv.reviewee_id = $1
		 ORDER BY rv.created_at DESC`, revieweeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.ReviewerID, &rv.RevieweeID, &rv.Rating,
			&rv.Comment, &rv.CreatedAt, &rv.ReviewerName); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
