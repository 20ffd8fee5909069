package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/notification/presentation/controller"
)

// RegisterRoutes registers notification HTTP endpoints under the given router group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, queue qport.Client) {
	sendCtl := controller.NewSendSMSController(pool, queue)

	// POST /api/v1/sms -> record and deliver an SMS campaign
	g.POST("", sendCtl.Handle())
}
