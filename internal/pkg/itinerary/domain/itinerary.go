package itinerary

import "errors"

var (
	ErrNotFound         = errors.New("itinerary: not found")
	ErrClosed           = errors.New("itinerary: already completed or canceled")
	ErrPassengerExists  = errors.New("itinerary: passenger already on board")
	ErrPassengerMissing = errors.New("itinerary: passenger not on this itinerary")
	ErrStopoverMissing  = errors.New("itinerary: no stopover at that position")
	ErrInvalidPoint     = errors.New("itinerary: a point needs exactly two coordinates")
)

// Point is a GeoJSON-style position.
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPoint builds a validated GeoJSON point from a lng/lat pair.
func NewPoint(coords []float64) (Point, error) {
	if len(coords) != 2 {
		return Point{}, ErrInvalidPoint
	}
	return Point{Type: "Point", Coordinates: coords}, nil
}

// Itinerary is one carpool trip offered by a driver. Passengers and stopovers
// are mutable until the trip is completed or canceled.
type Itinerary struct {
	ID          string   `db:"id"`
	DriverID    string   `db:"driver_id"`
	Passengers  []string `db:"passengers"`
	StartPoint  Point    `db:"start_point"`
	EndPoint    Point    `db:"end_point"`
	Stopovers   []Point  `db:"stopovers"`
	IsCompleted bool     `db:"is_completed"`
	IsCanceled  bool     `db:"is_canceled"`
}

// Open reports whether the trip still accepts changes.
func (it Itinerary) Open() bool {
	return !it.IsCompleted && !it.IsCanceled
}

func (it *Itinerary) AddPassenger(userID string) error {
	if !it.Open() {
		return ErrClosed
	}
	for _, id := range it.Passengers {
		if id == userID {
			return ErrPassengerExists
		}
	}
	it.Passengers = append(it.Passengers, userID)
	return nil
}

func (it *Itinerary) RemovePassenger(userID string) error {
	if !it.Open() {
		return ErrClosed
	}
	for i, id := range it.Passengers {
		if id == userID {
			it.Passengers = append(it.Passengers[:i], it.Passengers[i+1:]...)
			return nil
		}
	}
	return ErrPassengerMissing
}

func (it *Itinerary) AddStopover(p Point) error {
	if !it.Open() {
		return ErrClosed
	}
	it.Stopovers = append(it.Stopovers, p)
	return nil
}

func (it *Itinerary) RemoveStopover(index int) error {
	if !it.Open() {
		return ErrClosed
	}
	if index < 0 || index >= len(it.Stopovers) {
		return ErrStopoverMissing
	}
	it.Stopovers = append(it.Stopovers[:index], it.Stopovers[index+1:]...)
	return nil
}

func (it *Itinerary) Complete() error {
	if !it.Open() {
		return ErrClosed
	}
	it.IsCompleted = true
	return nil
}

func (it *Itinerary) Cancel() error {
	if !it.Open() {
		return ErrClosed
	}
	it.IsCanceled = true
	return nil
}
