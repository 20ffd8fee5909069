package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTrip() Itinerary {
	start, _ := NewPoint([]float64{-17.44, 14.69})
	end, _ := NewPoint([]float64{-17.27, 14.76})
	return Itinerary{ID: "it-1", DriverID: "driver-1", StartPoint: start, EndPoint: end}
}

func TestNewPoint(t *testing.T) {
	p, err := NewPoint([]float64{-17.44, 14.69})
	require.NoError(t, err)
	assert.Equal(t, "Point", p.Type)
	assert.Equal(t, []float64{-17.44, 14.69}, p.Coordinates)

	_, err = NewPoint([]float64{1})
	assert.ErrorIs(t, err, ErrInvalidPoint)
	_, err = NewPoint([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestPassengerLifecycle(t *testing.T) {
	it := openTrip()

	require.NoError(t, it.AddPassenger("alice"))
	assert.ErrorIs(t, it.AddPassenger("alice"), ErrPassengerExists)

	require.NoError(t, it.RemovePassenger("alice"))
	assert.ErrorIs(t, it.RemovePassenger("alice"), ErrPassengerMissing)
}

func TestStopoverLifecycle(t *testing.T) {
	it := openTrip()
	p, _ := NewPoint([]float64{-17.35, 14.72})

	require.NoError(t, it.AddStopover(p))
	require.Len(t, it.Stopovers, 1)

	assert.ErrorIs(t, it.RemoveStopover(5), ErrStopoverMissing)
	assert.ErrorIs(t, it.RemoveStopover(-1), ErrStopoverMissing)
	require.NoError(t, it.RemoveStopover(0))
	assert.Empty(t, it.Stopovers)
}

func TestClosedTripRejectsChanges(t *testing.T) {
	completed := openTrip()
	require.NoError(t, completed.Complete())
	assert.False(t, completed.Open())

	canceled := openTrip()
	require.NoError(t, canceled.Cancel())
	assert.False(t, canceled.Open())

	p, _ := NewPoint([]float64{-17.35, 14.72})
	for _, it := range []*Itinerary{&completed, &canceled} {
		assert.ErrorIs(t, it.AddPassenger("bob"), ErrClosed)
		assert.ErrorIs(t, it.AddStopover(p), ErrClosed)
		assert.ErrorIs(t, it.Complete(), ErrClosed)
		assert.ErrorIs(t, it.Cancel(), ErrClosed)
	}
}
