package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/review/application/service"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/review/persistence/repository/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/review/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	repo := adapter.NewPgReviewRepository(pool)
	svc := service.NewReviewService(repo)
	ctl := controller.NewReviewController(svc)

	g.POST("", ctl.HandleAdd)
	g.GET("/user/:userId", ctl.HandleListByUser)
}
