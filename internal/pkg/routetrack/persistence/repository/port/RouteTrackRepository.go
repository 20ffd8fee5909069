package port

import (
	"context"

	routetrack "github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/domain"
)

type RouteTrackRepository interface {
	Save(ctx context.Context, rt routetrack.RouteTrack) (string, error)
	GetByRouteID(ctx context.Context, routeID string) (routetrack.RouteTrack, error)
	// Expire marks the link unusable without deleting the row.
	Expire(ctx context.Context, routeID string) error
}
