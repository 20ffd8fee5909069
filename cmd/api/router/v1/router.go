package v1

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/cache/port"
	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/realtime"
	chathttp "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/presentation/http"
	itineraryhttp "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/presentation/http"
	smshttp "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/presentation/http"
	projecthttp "github.com/MdialloC19/backend-IPDL/internal/pkg/project/presentation/http"
	reviewhttp "github.com/MdialloC19/backend-IPDL/internal/pkg/review/presentation/http"
	routetrackhttp "github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/presentation/http"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
	userhttp "github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/http"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/middleware"
)

// Deps carries the shared infrastructure every domain router draws from.
type Deps struct {
	Pool   *pgxpool.Pool
	Cache  cacheport.Cache
	Queue  qport.Client
	Hub    *realtime.Hub
	Issuer *token.Issuer
	Log    *slog.Logger
}

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, d Deps) {
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Authenticate(d.Issuer))

	userhttp.RegisterRoutes(v1.Group("/users"), d.Pool, d.Queue, d.Issuer, d.Log)
	chathttp.RegisterRoutes(v1.Group("/conversation"), d.Pool, d.Hub, d.Log)
	itineraryhttp.RegisterRoutes(v1.Group("/itineraries"), d.Pool)
	projecthttp.RegisterRoutes(v1.Group("/projects"), d.Pool)
	reviewhttp.RegisterRoutes(v1.Group("/reviews"), d.Pool)
	routetrackhttp.RegisterRoutes(v1.Group("/routetracks"), d.Pool, d.Cache, d.Log)
	smshttp.RegisterRoutes(v1.Group("/sms"), d.Pool, d.Queue)
}
