package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itinerary "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/domain"
)

type memoryItineraryRepo struct {
	trips map[string]itinerary.Itinerary
	seq   int
}

func newMemoryItineraryRepo() *memoryItineraryRepo {
	return &memoryItineraryRepo{trips: make(map[string]itinerary.Itinerary)}
}

func (m *memoryItineraryRepo) Create(_ context.Context, it itinerary.Itinerary) (string, error) {
	m.seq++
	it.ID = fmt.Sprintf("it-%d", m.seq)
	m.trips[it.ID] = it
	return it.ID, nil
}

func (m *memoryItineraryRepo) GetByID(_ context.Context, id string) (itinerary.Itinerary, error) {
	it, ok := m.trips[id]
	if !ok {
		return itinerary.Itinerary{}, itinerary.ErrNotFound
	}
	return it, nil
}

func (m *memoryItineraryRepo) ListByDriver(_ context.Context, driverID string) ([]itinerary.Itinerary, error) {
	out := make([]itinerary.Itinerary, 0)
	for _, it := range m.trips {
		if it.DriverID == driverID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memoryItineraryRepo) ListByPassenger(_ context.Context, passengerID string) ([]itinerary.Itinerary, error) {
	out := make([]itinerary.Itinerary, 0)
	for _, it := range m.trips {
		for _, p := range it.Passengers {
			if p == passengerID {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

func (m *memoryItineraryRepo) Update(_ context.Context, it itinerary.Itinerary) error {
	if _, ok := m.trips[it.ID]; !ok {
		return itinerary.ErrNotFound
	}
	m.trips[it.ID] = it
	return nil
}

func createInput() CreateInput {
	return CreateInput{
		DriverID:   "driver-1",
		StartPoint: []float64{-17.44, 14.69},
		EndPoint:   []float64{-17.27, 14.76},
	}
}

func TestCreateItinerary(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())

	it, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "Point", it.StartPoint.Type)
	assert.True(t, it.Open())
}

func TestCreateItineraryValidation(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())

	in := createInput()
	in.DriverID = ""
	_, err := svc.Create(context.Background(), in)
	assert.Error(t, err)

	in = createInput()
	in.StartPoint = []float64{1}
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, itinerary.ErrInvalidPoint)

	in = createInput()
	in.Stopovers = [][]float64{{1, 2}, {3}}
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, itinerary.ErrInvalidPoint)
}

func TestPassengerMutationsPersist(t *testing.T) {
	repo := newMemoryItineraryRepo()
	svc := NewItineraryService(repo)

	created, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	it, err := svc.AddPassenger(context.Background(), created.ID, "alice")
	require.NoError(t, err)
	assert.Contains(t, it.Passengers, "alice")
	assert.Contains(t, repo.trips[created.ID].Passengers, "alice")

	_, err = svc.AddPassenger(context.Background(), created.ID, "alice")
	assert.ErrorIs(t, err, itinerary.ErrPassengerExists)

	list, err := svc.ListByPassenger(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	it, err = svc.RemovePassenger(context.Background(), created.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, it.Passengers)
}

func TestCompleteFreezesTrip(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())
	created, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	it, err := svc.Complete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, it.IsCompleted)

	_, err = svc.AddPassenger(context.Background(), created.ID, "late-joiner")
	assert.ErrorIs(t, err, itinerary.ErrClosed)

	_, err = svc.Cancel(context.Background(), created.ID)
	assert.ErrorIs(t, err, itinerary.ErrClosed)
}

func TestMutateUnknownItinerary(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())
	_, err := svc.AddPassenger(context.Background(), "ghost", "alice")
	assert.ErrorIs(t, err, itinerary.ErrNotFound)
}

func TestAddStopover(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())
	created, err := svc.Create(context.Background(), createInput())
	require.NoError(t, err)

	it, err := svc.AddStopover(context.Background(), created.ID, []float64{-17.35, 14.72})
	require.NoError(t, err)
	require.Len(t, it.Stopovers, 1)

	_, err = svc.AddStopover(context.Background(), created.ID, []float64{-17.35})
	assert.ErrorIs(t, err, itinerary.ErrInvalidPoint)

	it, err = svc.RemoveStopover(context.Background(), created.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, it.Stopovers)
}
