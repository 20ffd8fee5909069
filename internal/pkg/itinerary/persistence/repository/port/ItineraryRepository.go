package repository

import (
	"context"

	itinerary "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/domain"
)

// ItineraryRepository defines persistence operations for carpool trips.
type ItineraryRepository interface {
	Create(ctx context.Context, it itinerary.Itinerary) (string, error)

	// GetByID returns itinerary.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (itinerary.Itinerary, error)

	ListByDriver(ctx context.Context, driverID string) ([]itinerary.Itinerary, error)
	ListByPassenger(ctx context.Context, passengerID string) ([]itinerary.Itinerary, error)

	// Update overwrites the mutable fields (passengers, stopovers, flags).
	Update(ctx context.Context, it itinerary.Itinerary) error
}
