package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/api/middleware"
	"github.com/lettaaaaa/uklon-service/internal/services"
)

type RideHandler struct {
	rideService *services.RideService
}

func NewRideHandler(rideService *services.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

type CreateRideRequest struct {
	PickupLocation  string `json:"pickup_location" binding:"required"`
	DropoffLocation string `json:"dropoff_location" binding:"required"`
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	ride, err := h.rideService.CreateRide(c.Request.Context(), user.ID, req.PickupLocation, req.DropoffLocation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, ride)
}

// ListRides handles GET /rides?skip=&limit=
func (h *RideHandler) ListRides(c *gin.Context) {
	user := middleware.CurrentUser(c)

	rides, err := h.rideService.ListRides(c.Request.Context(), user.ID, pageFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, rides)
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ride id"})
		return
	}

	user := middleware.CurrentUser(c)
	ride, err := h.rideService.GetRide(c.Request.Context(), id, user.ID)
	if err != nil {
		h.writeRideError(c, err)
		return
	}

	c.JSON(http.StatusOK, ride)
}

type UpdateRideRequest struct {
	DriverID *int64   `json:"driver_id"`
	Status   *string  `json:"status"`
	Price    *float64 `json:"price"`
}

// UpdateRide handles PATCH /rides/:id
func (h *RideHandler) UpdateRide(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ride id"})
		return
	}

	var req UpdateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	ride, err := h.rideService.UpdateRide(c.Request.Context(), id, user.ID, services.RideUpdate{
		DriverID: req.DriverID,
		Status:   req.Status,
		Price:    req.Price,
	})
	if err != nil {
		h.writeRideError(c, err)
		return
	}

	c.JSON(http.StatusOK, ride)
}

// CancelRide handles DELETE /rides/:id
func (h *RideHandler) CancelRide(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ride id"})
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.rideService.CancelRide(c.Request.Context(), id, user.ID); err != nil {
		h.writeRideError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RideHandler) writeRideError(c *gin.Context, err error) {
	switch err {
	case services.ErrRideNotFound, services.ErrDriverNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.ErrNotRideOwner:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case services.ErrInvalidStatus, services.ErrInvalidTransition:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
