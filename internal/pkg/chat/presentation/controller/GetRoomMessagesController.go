package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/chat/application/usecase"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/chat/persistence/repository/adapter"
)

// GetRoomMessagesController handles the room history endpoint (one controller per endpoint)
type GetRoomMessagesController struct {
	UC *usecase.ListRoomMessagesUseCase
}

func NewGetRoomMessagesController(pool *pgxpool.Pool) *GetRoomMessagesController {
	repo := adapter.NewPgConversationRepository(pool)
	return &GetRoomMessagesController{UC: usecase.NewListRoomMessagesUseCase(repo)}
}

func (h *GetRoomMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("roomId")
		if roomID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.ListRoomMessagesInput{Room: roomID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			entry := gin.H{
				"id":        m.ID,
				"room":      m.Room,
				"text":      m.Text,
				"timestamp": m.Timestamp,
			}
			if m.Sender != nil {
				entry["sender"] = gin.H{
					"firstname": m.Sender.Firstname,
					"lastname":  m.Sender.Lastname,
					"phone":     m.Sender.Phone,
				}
			} else {
				entry["sender"] = m.SenderID
			}
			out = append(out, entry)
		}

		c.JSON(http.StatusOK, out)
	}
}
