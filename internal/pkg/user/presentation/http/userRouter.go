package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers user/auth HTTP endpoints under the given router group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, queue qport.Client, issuer *token.Issuer, log *slog.Logger) {
	registerCtl := controller.NewRegisterUserController(pool, queue, log)
	loginCtl := controller.NewLoginUserController(pool, issuer)
	verifyCtl := controller.NewVerifyOtpController(pool)
	getCtl := controller.NewGetUsersController(pool)

	g.POST("/register", registerCtl.Handle())
	g.POST("/login", loginCtl.Handle())
	g.POST("/verifyOtp", verifyCtl.Handle())

	g.GET("/getAllUser", getCtl.HandleAll())
	g.GET("/getUserByEmail", getCtl.HandleByEmail())
	g.GET("/getUser/:id", getCtl.HandleByID())
}
