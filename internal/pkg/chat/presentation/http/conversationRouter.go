package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/realtime"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/chat/persistence/repository/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes registers conversation HTTP endpoints under the given router
// group. It constructs per-endpoint controllers and binds them directly to
// routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, hub *realtime.Hub, log *slog.Logger) {
	historyCtl := controller.NewGetRoomMessagesController(pool)
	socketCtl := controller.NewChatSocketController(adapter.NewPgConversationRepository(pool), hub, log)

	// GET /api/v1/conversation/rooms/:roomId/messages -> room history, oldest first
	g.GET("/rooms/:roomId/messages", historyCtl.Handle())

	// GET /api/v1/conversation/ws -> websocket endpoint for realtime events
	g.GET("/ws", socketCtl.Handle())
}
