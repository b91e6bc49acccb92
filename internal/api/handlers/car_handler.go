package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/services"
)

type CarHandler struct {
	carService *services.CarService
}

func NewCarHandler(carService *services.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

type CreateCarRequest struct {
	DriverID    int64   `json:"driver_id" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	PlateNumber string  `json:"plate_number" binding:"required"`
	Color       *string `json:"color"`
	Year        *int    `json:"year"`
}

// CreateCar handles POST /cars
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), req.DriverID, req.Model, req.PlateNumber, req.Color, req.Year)
	if err != nil {
		switch err {
		case services.ErrDriverNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case services.ErrPlateExists:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, car)
}

// ListCars handles GET /cars?skip=&limit=
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.carService.ListCars(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar handles GET /cars/:id
func (h *CarHandler) GetCar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id"})
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrCarNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, car)
}
