package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cacheport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/cache/port"
	routetrack "github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/persistence/repository/port"
)

var ErrPersistence = fmt.Errorf("routetrack service persistence error")

const cacheTTL = 15 * time.Minute

// RouteTrackService issues and resolves shareable trip links. Lookups go
// through the cache first; the store is the source of truth.
type RouteTrackService struct {
	Repo  repository.RouteTrackRepository
	Cache cacheport.Cache
	Log   *slog.Logger
}

func NewRouteTrackService(repo repository.RouteTrackRepository, cache cacheport.Cache, log *slog.Logger) *RouteTrackService {
	if log == nil {
		log = slog.Default()
	}
	return &RouteTrackService{Repo: repo, Cache: cache, Log: log}
}

func (s *RouteTrackService) Create(ctx context.Context, userID string) (*routetrack.RouteTrack, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	rt := routetrack.RouteTrack{
		UserID:  userID,
		RouteID: uuid.NewString(),
	}
	id, err := s.Repo.Save(ctx, rt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	rt.ID = id
	rt.CreatedAt = time.Now().UTC()

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey(rt.RouteID), rt.UserID, cacheTTL); err != nil {
			s.Log.Warn("routetrack cache set failed", "routeId", rt.RouteID, "error", err)
		}
	}
	return &rt, nil
}

// Get resolves a public route link. Expired or unknown links both surface as
// errors so the HTTP layer can answer 404.
func (s *RouteTrackService) Get(ctx context.Context, routeID string) (*routetrack.RouteTrack, error) {
	if s.Cache != nil {
		userID, err := s.Cache.Get(ctx, cacheKey(routeID))
		if err == nil {
			return &routetrack.RouteTrack{RouteID: routeID, UserID: userID}, nil
		}
		if !errors.Is(err, cacheport.ErrMiss) {
			s.Log.Warn("routetrack cache get failed", "routeId", routeID, "error", err)
		}
	}

	rt, err := s.Repo.GetByRouteID(ctx, routeID)
	if err != nil {
		if errors.Is(err, routetrack.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rt.IsExpired {
		return nil, routetrack.ErrExpired
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey(routeID), rt.UserID, cacheTTL); err != nil {
			s.Log.Warn("routetrack cache set failed", "routeId", routeID, "error", err)
		}
	}
	return &rt, nil
}

// Delete marks a link expired and drops it from the cache.
func (s *RouteTrackService) Delete(ctx context.Context, routeID string) error {
	if err := s.Repo.Expire(ctx, routeID); err != nil {
		if errors.Is(err, routetrack.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if s.Cache != nil {
		if _, err := s.Cache.Del(ctx, cacheKey(routeID)); err != nil {
			s.Log.Warn("routetrack cache del failed", "routeId", routeID, "error", err)
		}
	}
	return nil
}

func cacheKey(routeID string) string {
	return "routetrack:" + routeID
}
