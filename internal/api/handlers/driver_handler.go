package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/services"
)

type DriverHandler struct {
	driverService *services.DriverService
}

func NewDriverHandler(driverService *services.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

type CreateDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req.Name, req.Phone, req.LicenseNumber)
	if err != nil {
		switch err {
		case services.ErrLicenseExists, services.ErrPhoneExists:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// ListDrivers handles GET /drivers?skip=&limit=&available_only=
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	availableOnly := c.Query("available_only") == "true"

	drivers, err := h.driverService.ListDrivers(c.Request.Context(), pageFromQuery(c), availableOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrDriverNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, driver)
}
