package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/usecase"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/adapter"
)

// VerifyOtpController handles account confirmation (one controller per endpoint)
type VerifyOtpController struct {
	UC *usecase.VerifyOtpUseCase
}

func NewVerifyOtpController(pool *pgxpool.Pool) *VerifyOtpController {
	return &VerifyOtpController{UC: usecase.NewVerifyOtpUseCase(adapter.NewPgUserRepository(pool))}
}

type verifyOtpRequest struct {
	Phone string `json:"phone" binding:"required"`
	Otp   string `json:"otp" binding:"required"`
}

func (h *VerifyOtpController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyOtpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.VerifyOtpInput{Phone: req.Phone, Otp: req.Otp})
		if err != nil {
			switch {
			case errors.Is(err, user.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "account not found"})
			case errors.Is(err, usecase.ErrInvalidOtp):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Le code secret personnel est incorrect"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"code":  200,
			"msg":   "Code Secret valide, vérification réussie.",
			"phone": req.Phone,
		})
	}
}
