package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/review/application/service"
	review "github.com/MdialloC19/backend-IPDL/internal/pkg/review/domain"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/middleware"
)

type ReviewController struct {
	svc *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

type addReviewRequest struct {
	RevieweeID string `json:"revieweeId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}

func (ctl *ReviewController) HandleAdd(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rv, err := ctl.svc.Add(c.Request.Context(), principal.UserID, req.RevieweeID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrPersistence) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save review"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reviewView(rv))
}

func (ctl *ReviewController) HandleListByUser(c *gin.Context) {
	list, err := ctl.svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load reviews"})
		return
	}
	views := make([]gin.H, 0, len(list))
	for i := range list {
		views = append(views, reviewView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

func reviewView(rv *review.Review) gin.H {
	return gin.H{
		"id":           rv.ID,
		"reviewerId":   rv.ReviewerID,
		"revieweeId":   rv.RevieweeID,
		"reviewerName": rv.ReviewerName,
		"rating":       rv.Rating,
		"comment":      rv.Comment,
		"createdAt":    rv.CreatedAt,
	}
}
