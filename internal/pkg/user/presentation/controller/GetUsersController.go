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

// GetUsersController serves the user lookup endpoints.
type GetUsersController struct {
	getUC  *usecase.GetUserUseCase
	listUC *usecase.ListUsersUseCase
}

func NewGetUsersController(pool *pgxpool.Pool) *GetUsersController {
	repo := adapter.NewPgUserRepository(pool)
	return &GetUsersController{
		getUC:  usecase.NewGetUserUseCase(repo),
		listUC: usecase.NewListUsersUseCase(repo),
	}
}

func (h *GetUsersController) HandleAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		users, err := h.listUC.Execute(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur interne du serveur."})
			return
		}

		out := make([]gin.H, 0, len(users))
		for _, u := range users {
			out = append(out, userView(u))
		}
		c.JSON(http.StatusOK, out)
	}
}

func (h *GetUsersController) HandleByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.replyOne(c, usecase.GetUserInput{ID: c.Param("id")})
	}
}

func (h *GetUsersController) HandleByEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.replyOne(c, usecase.GetUserInput{Email: c.Query("email")})
	}
}

func (h *GetUsersController) replyOne(c *gin.Context, in usecase.GetUserInput) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	u, err := h.getUC.Execute(ctx, in)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur interne du serveur."})
		return
	}
	c.JSON(http.StatusOK, userView(*u))
}
