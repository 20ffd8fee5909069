package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/usecase"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/adapter"
)

// LoginUserController handles the login endpoint (one controller per endpoint)
type LoginUserController struct {
	UC *usecase.LoginUserUseCase
}

func NewLoginUserController(pool *pgxpool.Pool, issuer *token.Issuer) *LoginUserController {
	repo := adapter.NewPgUserRepository(pool)
	return &LoginUserController{UC: usecase.NewLoginUserUseCase(repo, issuer)}
}

type loginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.LoginUserInput{Email: req.Email, Password: req.Password})
		if err != nil {
			switch {
			case errors.Is(err, user.ErrCredentials):
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid credentials"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"userId":    res.User.ID,
			"firstname": res.User.Firstname,
			"lastname":  res.User.Lastname,
			"email":     res.User.Email,
			"role":      res.User.Role,
			"phone":     res.User.Phone,
			"token":     res.Token,
			"success":   true,
			"message":   "Authentifié",
		})
	}
}
