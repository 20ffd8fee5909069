package adapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	itinerary "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/domain"
)

// Points are stored as JSONB to keep the GeoJSON shape intact.
type PgItineraryRepository struct {
	pool *pgxpool.Pool
}

func NewPgItineraryRepository(pool *pgxpool.Pool) *PgItineraryRepository {
	return &PgItineraryRepository{pool: pool}
}

func (r *PgItineraryRepository) Create(ctx context.Context, it itinerary.Itinerary) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgItineraryRepository: nil pool")
	}
	start, end, stops, err := encodePoints(it)
	if err != nil {
		return "", err
	}
	var id string
	err = r.pool.QueryRow(ctx, `
		INSERT INTO itineraries (driver_id, passengers, start_point, end_point, stopovers, is_completed, is_canceled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, it.DriverID, it.Passengers, start, end, stops, it.IsCompleted, it.IsCanceled).Scan(&id)
	return id, err
}

func (r *PgItineraryRepository) GetByID(ctx context.Context, id string) (itinerary.Itinerary, error) {
	if r == nil || r.pool == nil {
		return itinerary.Itinerary{}, errors.New("PgItineraryRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, selectItineraries+` WHERE id::text = $1`, id)
	it, err := scanItinerary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return itinerary.Itinerary{}, itinerary.ErrNotFound
	}
	return it, err
}

func (r *PgItineraryRepository) ListByDriver(ctx context.Context, driverID string) ([]itinerary.Itinerary, error) {
	return r.list(ctx, selectItineraries+` WHERE driver_id = $1`, driverID)
}

func (r *PgItineraryRepository) ListByPassenger(ctx context.Context, passengerID string) ([]itinerary.Itinerary, error) {
	return r.list(ctx, selectItineraries+` WHERE $1 = ANY(passengers)`, passengerID)
}

func (r *PgItineraryRepository) Update(ctx context.Context, it itinerary.Itinerary) error {
	if r == nil || r.pool == nil {
		return errors.New("PgItineraryRepository: nil pool")
	}
	_, _, stops, err := encodePoints(it)
	if err != nil {
		return err
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE itineraries
		SET passengers = $2, stopovers = $3, is_completed = $4, is_canceled = $5
		WHERE id::text = $1
	`, it.ID, it.Passengers, stops, it.IsCompleted, it.IsCanceled)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return itinerary.ErrNotFound
	}
	return nil
}

const selectItineraries = `
	SELECT id::text, driver_id, COALESCE(passengers, '{}'), start_point, end_point,
	       COALESCE(stopovers, '[]'), is_completed, is_canceled
	FROM itineraries`

func (r *PgItineraryRepository) list(ctx context.Context, query string, arg any) ([]itinerary.Itinerary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgItineraryRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []itinerary.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanItinerary(row pgx.Row) (itinerary.Itinerary, error) {
	var (
		it    itinerary.Itinerary
		start []byte
		end   []byte
		stops []byte
	)
	if err := row.Scan(&it.ID, &it.DriverID, &it.Passengers, &start, &end, &stops,
		&it.IsCompleted, &it.IsCanceled); err != nil {
		return itinerary.Itinerary{}, err
	}
	if err := json.Unmarshal(start, &it.StartPoint); err != nil {
		return itinerary.Itinerary{}, err
	}
	if err := json.Unmarshal(end, &it.EndPoint); err != nil {
		return itinerary.Itinerary{}, err
	}
	if err := json.Unmarshal(stops, &it.Stopovers); err != nil {
		return itinerary.Itinerary{}, err
	}
	return it, nil
}

func encodePoints(it itinerary.Itinerary) (start, end, stops []byte, err error) {
	if start, err = json.Marshal(it.StartPoint); err != nil {
		return nil, nil, nil, err
	}
	if end, err = json.Marshal(it.EndPoint); err != nil {
		return nil, nil, nil, err
	}
	if it.Stopovers == nil {
		it.Stopovers = []itinerary.Point{}
	}
	if stops, err = json.Marshal(it.Stopovers); err != nil {
		return nil, nil, nil, err
	}
	return start, end, stops, nil
}
