package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/notification/application/usecase"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/notification/persistence/repository/adapter"
)

// SendSMSController handles the SMS campaign endpoint (one controller per endpoint)
type SendSMSController struct {
	UC *usecase.SendSMSUseCase
}

func NewSendSMSController(pool *pgxpool.Pool, queue qport.Client) *SendSMSController {
	repo := adapter.NewPgSMSRepository(pool)
	return &SendSMSController{UC: usecase.NewSendSMSUseCase(repo, queue)}
}

type sendSMSRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content" binding:"required"`
	Msisdns []string `json:"msisdns" binding:"required"`
}

func (h *SendSMSController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendSMSRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		s, err := h.UC.Execute(ctx, usecase.SendSMSInput{
			Title:   req.Title,
			Content: req.Content,
			Msisdns: req.Msisdns,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lors de l'envoi du SMS"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "SMS envoyé avec succès", "id": s.ID})
	}
}
