package handlers

import (
	"net/http"

	"timebill-api/ent"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CatalogHandler holds dependencies for service catalog operations.
type CatalogHandler struct {
	service   services.CatalogService
	validator *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service services.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: validate,
	}
}

// ListServices godoc
// @Summary      List the service catalog
// @Tags         services
// @Produce      json
// @Success      200 {array}   dto.ServiceResponse "Successfully retrieved services"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /services [get]
// @Security     BearerAuth
func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "ListServices")
		return
	}

	c.JSON(http.StatusOK, lo.Map(items, func(s *ent.Service, _ int) dto.ServiceResponse {
		return services.MapServiceToResponse(s)
	}))
}

// GetServiceByID godoc
// @Summary      Get a catalog entry by ID
// @Tags         services
// @Produce      json
// @Param        id path      string true  "Service ID" Format(uuid)
// @Success      200 {object}  dto.ServiceResponse "Successfully retrieved service"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Service Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /services/{id} [get]
// @Security     BearerAuth
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	item, err := h.service.GetServiceByID(c.Request.Context(), &dto.GetServiceByIDRequest{ID: serviceID})
	if err != nil {
		respondServiceError(c, err, "GetServiceByID")
		return
	}

	c.JSON(http.StatusOK, services.MapServiceToResponse(item))
}

// CreateService godoc
// @Summary      Add a catalog entry
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        service body      dto.CreateServiceRequest true  "Service name"
// @Success      201 {object}  dto.ServiceResponse "Service created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /services [post]
// @Security     BearerAuth
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	item, err := h.service.CreateService(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "CreateService")
		return
	}

	c.JSON(http.StatusCreated, services.MapServiceToResponse(item))
}

// UpdateService godoc
// @Summary      Rename a catalog entry
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Service ID" Format(uuid)
// @Param        service body      dto.UpdateServiceRequest true  "New name"
// @Success      200 {object}  dto.ServiceResponse "Service updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Service Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /services/{id} [put]
// @Security     BearerAuth
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = serviceID // Set ID from path
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	item, err := h.service.UpdateService(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateService")
		return
	}

	c.JSON(http.StatusOK, services.MapServiceToResponse(item))
}

// DeleteService godoc
// @Summary      Delete a catalog entry
// @Description  Removes a service. Tasks that referenced it keep their history; the reference is cleared.
// @Tags         services
// @Produce      json
// @Param        id path      string true  "Service ID" Format(uuid)
// @Success      204 {object}  nil "Service deleted successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Service Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /services/{id} [delete]
// @Security     BearerAuth
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), &dto.DeleteServiceRequest{ID: serviceID}); err != nil {
		respondServiceError(c, err, "DeleteService")
		return
	}

	c.Status(http.StatusNoContent)
}
