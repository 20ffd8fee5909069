package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/usecase"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/persistence/repository/adapter"
)

// RegisterUserController handles the registration endpoint (one controller per endpoint)
type RegisterUserController struct {
	UC *usecase.RegisterUserUseCase
}

func NewRegisterUserController(pool *pgxpool.Pool, queue qport.Client, log *slog.Logger) *RegisterUserController {
	repo := adapter.NewPgUserRepository(pool)
	return &RegisterUserController{UC: usecase.NewRegisterUserUseCase(repo, queue, log)}
}

type registerUserRequest struct {
	Firstname   string     `json:"firstname" binding:"required"`
	Lastname    string     `json:"lastname" binding:"required"`
	DateOfBirth *time.Time `json:"dateofbirth"`
	Nationality string     `json:"nationality"`
	Sexe        string     `json:"sexe"`
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required"`
	Phone       string     `json:"phone" binding:"required"`
	Role        string     `json:"role"`
}

func (h *RegisterUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		in := usecase.RegisterUserInput{
			Firstname:   req.Firstname,
			Lastname:    req.Lastname,
			Nationality: req.Nationality,
			Sexe:        req.Sexe,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			Role:        req.Role,
		}
		if req.DateOfBirth != nil {
			in.DateOfBirth = *req.DateOfBirth
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, in)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrDuplicate):
				c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, userView(*u))
	}
}

// userView serializes an account without its credential hashes.
func userView(u user.User) gin.H {
	return gin.H{
		"userId":      u.ID,
		"firstname":   u.Firstname,
		"lastname":    u.Lastname,
		"dateofbirth": u.DateOfBirth,
		"nationality": u.Nationality,
		"sexe":        u.Sexe,
		"role":        u.Role,
		"email":       u.Email,
		"phone":       u.Phone,
		"confirmed":   u.Confirmed,
	}
}
