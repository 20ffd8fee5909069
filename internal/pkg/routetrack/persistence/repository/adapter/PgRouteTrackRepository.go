package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	routetrack "github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/domain"
)

type PgRouteTrackRepository struct {
	pool *pgxpool.Pool
}

func NewPgRouteTrackRepository(pool *pgxpool.Pool) *PgRouteTrackRepository {
	return &PgRouteTrackRepository{pool: pool}
}

func (r *PgRouteTrackRepository) Save(ctx context.Context, rt routetrack.RouteTrack) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO route_tracks (user_id, route_id, is_expired)
		 VALUES ($1, $2, false)
		 RETURNING id`,
		rt.UserID, rt.RouteID,
	).Scan(&id)
	return id, err
}

func (r *PgRouteTrackRepository) GetByRouteID(ctx context.Context, routeID string) (routetrack.RouteTrack, error) {
	var rt routetrack.RouteTrack
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, route_id, is_expired, created_at
		 FROM route_tracks WHERE route_id = $1`, routeID,
	).Scan(&rt.ID, &rt.UserID, &rt.RouteID, &rt.IsExpired, &rt.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return routetrack.RouteTrack{}, routetrack.ErrNotFound
	}
	return rt, err
}

func (r *PgRouteTrackRepository) Expire(ctx context.Context, routeID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE route_tracks SET is_expired = true WHERE route_id = $1 AND is_expired = false`, routeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return routetrack.ErrNotFound
	}
	return nil
}
