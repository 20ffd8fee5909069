package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/cache/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/application/service"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/persistence/repository/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, log *slog.Logger) {
	repo := adapter.NewPgRouteTrackRepository(pool)
	svc := service.NewRouteTrackService(repo, cache, log)
	ctl := controller.NewRouteTrackController(svc)

	g.POST("", ctl.HandleCreate)
	g.GET("/:routeId", ctl.HandleGet)
	g.DELETE("/:routeId", ctl.HandleDelete)
}
