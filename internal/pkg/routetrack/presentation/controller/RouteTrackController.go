package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/application/service"
	routetrack "github.com/MdialloC19/backend-IPDL/internal/pkg/routetrack/domain"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/middleware"
)

type RouteTrackController struct {
	svc *service.RouteTrackService
}

func NewRouteTrackController(svc *service.RouteTrackService) *RouteTrackController {
	return &RouteTrackController{svc: svc}
}

func (ctl *RouteTrackController) HandleCreate(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	rt, err := ctl.svc.Create(c.Request.Context(), principal.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create route link"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"routeId": rt.RouteID,
		"userId":  rt.UserID,
	})
}

func (ctl *RouteTrackController) HandleGet(c *gin.Context) {
	rt, err := ctl.svc.Get(c.Request.Context(), c.Param("routeId"))
	if err != nil {
		// expired links look exactly like unknown ones to the outside
		if errors.Is(err, routetrack.ErrNotFound) || errors.Is(err, routetrack.ErrExpired) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve route link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"routeId": rt.RouteID,
		"userId":  rt.UserID,
	})
}

func (ctl *RouteTrackController) HandleDelete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Request.Context(), c.Param("routeId")); err != nil {
		if errors.Is(err, routetrack.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete route link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route link expired"})
}
