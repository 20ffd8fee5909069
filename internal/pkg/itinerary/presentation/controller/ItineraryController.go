package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/application/service"
	itinerary "github.com/MdialloC19/backend-IPDL/internal/pkg/itinerary/domain"
)

type ItineraryController struct {
	svc *service.ItineraryService
}

func NewItineraryController(svc *service.ItineraryService) *ItineraryController {
	return &ItineraryController{svc: svc}
}

type createItineraryRequest struct {
	DriverID   string      `json:"driverId" binding:"required"`
	Passengers []string    `json:"passengers"`
	StartPoint []float64   `json:"startPoint" binding:"required"`
	EndPoint   []float64   `json:"endPoint" binding:"required"`
	Stopovers  [][]float64 `json:"stopovers"`
}

func (ctl *ItineraryController) HandleCreate(c *gin.Context) {
	var req createItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := ctl.svc.Create(c.Request.Context(), service.CreateInput{
		DriverID:   req.DriverID,
		Passengers: req.Passengers,
		StartPoint: req.StartPoint,
		EndPoint:   req.EndPoint,
		Stopovers:  req.Stopovers,
	})
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itineraryView(it))
}

func (ctl *ItineraryController) HandleGetByID(c *gin.Context) {
	it, err := ctl.svc.GetByID(c.Request.Context(), c.Param("itineraryId"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

func (ctl *ItineraryController) HandleListByDriver(c *gin.Context) {
	list, err := ctl.svc.ListByDriver(c.Request.Context(), c.Param("driverId"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryViews(list))
}

func (ctl *ItineraryController) HandleListByPassenger(c *gin.Context) {
	list, err := ctl.svc.ListByPassenger(c.Request.Context(), c.Param("passengerId"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryViews(list))
}

type passengerRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
	PassengerID string `json:"passengerId" binding:"required"`
}

func (ctl *ItineraryController) HandleAddPassenger(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := ctl.svc.AddPassenger(c.Request.Context(), req.ItineraryID, req.PassengerID)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

func (ctl *ItineraryController) HandleRemovePassenger(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := ctl.svc.RemovePassenger(c.Request.Context(), req.ItineraryID, req.PassengerID)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

type addStopoverRequest struct {
	ItineraryID string    `json:"itineraryId" binding:"required"`
	Stopover    []float64 `json:"stopover" binding:"required"`
}

func (ctl *ItineraryController) HandleAddStopover(c *gin.Context) {
	var req addStopoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := ctl.svc.AddStopover(c.Request.Context(), req.ItineraryID, req.Stopover)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

type removeStopoverRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
	Index       *int   `json:"index" binding:"required"`
}

func (ctl *ItineraryController) HandleRemoveStopover(c *gin.Context) {
	var req removeStopoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := ctl.svc.RemoveStopover(c.Request.Context(), req.ItineraryID, *req.Index)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

type itineraryIDRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
}

func (ctl *ItineraryController) HandleComplete(c *gin.Context) {
	var req itineraryIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := ctl.svc.Complete(c.Request.Context(), req.ItineraryID)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

func (ctl *ItineraryController) HandleCancel(c *gin.Context) {
	var req itineraryIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := ctl.svc.Cancel(c.Request.Context(), req.ItineraryID)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraryView(it))
}

func replyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "itinerary not found"})
	case errors.Is(err, service.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process itinerary"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func itineraryView(it *itinerary.Itinerary) gin.H {
	return gin.H{
		"id":          it.ID,
		"driverId":    it.DriverID,
		"passengers":  it.Passengers,
		"startPoint":  it.StartPoint,
		"endPoint":    it.EndPoint,
		"stopovers":   it.Stopovers,
		"isCompleted": it.IsCompleted,
		"isCanceled":  it.IsCanceled,
	}
}

func itineraryViews(list []itinerary.Itinerary) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, itineraryView(&list[i]))
	}
	return out
}
