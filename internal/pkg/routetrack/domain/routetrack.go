package routetrack

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("routetrack: not found")
	ErrExpired  = errors.New("routetrack: link expired")
)

// RouteTrack is a shareable live-trip link. RouteID is the public identifier
// handed out to followers; the row is never removed, only marked expired.
type RouteTrack struct {
	ID        string
	UserID    string
	RouteID   string
	IsExpired bool
	CreatedAt time.Time
}
