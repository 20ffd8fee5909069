package service

import (
	"context"
	"errors"
	"fmt"

	itinerary "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/persistence/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside the service
var ErrPersistence = fmt.Errorf("itinerary service persistence error")

// ItineraryService implements the trip operations on top of the repository:
// creation, lookups, passenger and stopover management, completion and
// cancellation. Domain rules live on the Itinerary type; the service loads,
// applies and stores.
type ItineraryService struct {
	Repo repository.ItineraryRepository
}

func NewItineraryService(repo repository.ItineraryRepository) *ItineraryService {
	return &ItineraryService{Repo: repo}
}

// CreateInput carries the data needed to open a new trip.
type CreateInput struct {
	DriverID   string
	Passengers []string
	StartPoint []float64
	EndPoint   []float64
	Stopovers  [][]float64
}

func (s *ItineraryService) Create(ctx context.Context, in CreateInput) (*itinerary.Itinerary, error) {
	if in.DriverID == "" {
		return nil, fmt.Errorf("driverId is required")
	}
	start, err := itinerary.NewPoint(in.StartPoint)
	if err != nil {
		return nil, err
	}
	end, err := itinerary.NewPoint(in.EndPoint)
	if err != nil {
		return nil, err
	}
	stops := make([]itinerary.Point, 0, len(in.Stopovers))
	for _, coords := range in.Stopovers {
		p, err := itinerary.NewPoint(coords)
		if err != nil {
			return nil, err
		}
		stops = append(stops, p)
	}

	it := itinerary.Itinerary{
		DriverID:   in.DriverID,
		Passengers: in.Passengers,
		StartPoint: start,
		EndPoint:   end,
		Stopovers:  stops,
	}
	id, err := s.Repo.Create(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	it.ID = id
	return &it, nil
}

func (s *ItineraryService) GetByID(ctx context.Context, id string) (*itinerary.Itinerary, error) {
	it, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return &it, nil
}

func (s *ItineraryService) ListByDriver(ctx context.Context, driverID string) ([]itinerary.Itinerary, error) {
	out, err := s.Repo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *ItineraryService) ListByPassenger(ctx context.Context, passengerID string) ([]itinerary.Itinerary, error) {
	out, err := s.Repo.ListByPassenger(ctx, passengerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *ItineraryService) AddPassenger(ctx context.Context, itineraryID, passengerID string) (*itinerary.Itinerary, error) {
	return s.mutate(ctx, itineraryID, func(it *itinerary.Itinerary) error {
		return it.AddPassenger(passengerID)
	})
}

func (s *ItineraryService) RemovePassenger(ctx context.Context, itineraryID, passengerID string) (*itinerary.Itinerary, error) {
	return s.mutate(ctx, itineraryID, func(it *itinerary.Itinerary) error {
		return it.RemovePassenger(passengerID)
	})
}

func (s *ItineraryService) AddStopover(ctx context.Context, itineraryID string, coords []float64) (*itinerary.Itinerary, error) {
	p, err := itinerary.NewPoint(coords)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, itineraryID, func(it *itinerary.Itinerary) error {
		return it.AddStopover(p)
	})
}

func (s *ItineraryService) RemoveStopover(ctx context.Context, itineraryID string, index int) (*itinerary.Itinerary, error) {
	return s.mutate(ctx, itineraryID, func(it *itinerary.Itinerary) error {
		return it.RemoveStopover(index)
	})
}

func (s *ItineraryService) Complete(ctx context.Context, itineraryID string) (*itinerary.Itinerary, error) {
	return s.mutate(ctx, itineraryID, (*itinerary.Itinerary).Complete)
}

func (s *ItineraryService) Cancel(ctx context.Context, itineraryID string) (*itinerary.Itinerary, error) {
	return s.mutate(ctx, itineraryID, (*itinerary.Itinerary).Cancel)
}

// mutate loads the trip, applies the domain change and stores the result.
func (s *ItineraryService) mutate(ctx context.Context, id string, apply func(*itinerary.Itinerary) error) (*itinerary.Itinerary, error) {
	if id == "" {
		return nil, fmt.Errorf("itineraryId is required")
	}
	it, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if err := apply(&it); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, it); err != nil {
		return nil, wrapRepoErr(err)
	}
	return &it, nil
}

func wrapRepoErr(err error) error {
	if errors.Is(err, itinerary.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
