package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/application/service"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/persistence/repository/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/presentation/controller"
)

// RegisterRoutes registers itinerary HTTP endpoints under the given router
// group. Lookup routes carry a static prefix so no param segment shares a
// tree position with a static sibling.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	repo := adapter.NewPgItineraryRepository(pool)
	svc := service.NewItineraryService(repo)
	ctl := controller.NewItineraryController(svc)

	g.POST("", ctl.HandleCreate)
	g.GET("/id/:itineraryId", ctl.HandleGetByID)
	g.GET("/driver/:driverId", ctl.HandleListByDriver)
	g.GET("/passenger/:passengerId", ctl.HandleListByPassenger)
	g.PATCH("/addPassenger", ctl.HandleAddPassenger)
	g.PATCH("/removePassenger", ctl.HandleRemovePassenger)
	g.PATCH("/addStopover", ctl.HandleAddStopover)
	g.PATCH("/removeStopover", ctl.HandleRemoveStopover)
	g.PATCH("/complete", ctl.HandleComplete)
	g.PATCH("/cancel", ctl.HandleCancel)
}
