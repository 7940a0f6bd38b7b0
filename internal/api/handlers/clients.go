package handlers

import (
	"net/http"

	"timebill-api/ent"
	"timebill-api/ent/customer"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ClientHandler holds dependencies for client operations.
type ClientHandler struct {
	service   services.ClientService
	validator *validator.Validate
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(service services.ClientService, validate *validator.Validate) *ClientHandler {
	return &ClientHandler{
		service:   service,
		validator: validate,
	}
}

// CreateClient godoc
// @Summary      Register a client
// @Description  Creates a client with contact details, an hourly rate, a currency and optional service assignments.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client body      dto.CreateClientRequest true  "Client details"
// @Success      201 {object}  dto.ClientResponse "Client created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      409 {object}  map[string]string "Conflict - Invalid service reference"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients [post]
// @Security     BearerAuth
func (h *ClientHandler) CreateClient(c *gin.Context) {
	// 1. Bind/Validate Request
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	// 2. Create the client
	client, err := h.service.CreateClient(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "CreateClient")
		return
	}

	// 3. Map and Return
	c.JSON(http.StatusCreated, services.MapClientToResponse(client))
}

// GetClientByID godoc
// @Summary      Get a client by ID
// @Description  Retrieves a client together with its assigned services.
// @Tags         clients
// @Produce      json
// @Param        id path      string true  "Client ID" Format(uuid)
// @Success      200 {object}  dto.ClientResponse "Successfully retrieved client"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients/{id} [get]
// @Security     BearerAuth
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID format"})
		return
	}

	client, err := h.service.GetClientByID(c.Request.Context(), &dto.GetClientByIDRequest{ID: clientID})
	if err != nil {
		respondServiceError(c, err, "GetClientByID")
		return
	}

	c.JSON(http.StatusOK, services.MapClientToResponse(client))
}

// ListClients godoc
// @Summary      List clients
// @Description  Retrieves clients ordered by name. Supports status filtering and pagination.
// @Tags         clients
// @Produce      json
// @Param        limit query int false "Pagination limit" default(50)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        status query string false "Filter by status" Enums(active, inactive)
// @Success      200 {array}   dto.ClientResponse "Successfully retrieved clients"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients [get]
// @Security     BearerAuth
func (h *ClientHandler) ListClients(c *gin.Context) {
	var req dto.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	clients, err := h.service.ListClients(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "ListClients")
		return
	}

	c.JSON(http.StatusOK, lo.Map(clients, func(client *ent.Customer, _ int) dto.ClientResponse {
		return services.MapClientToResponse(client)
	}))
}

// UpdateClient godoc
// @Summary      Update a client
// @Description  Modifies client fields. A provided service_ids list replaces the whole assignment. Rate changes only affect invoices composed afterwards.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Client ID" Format(uuid)
// @Param        client body      dto.UpdateClientRequest true  "Fields to update"
// @Success      200 {object}  dto.ClientResponse "Client updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Invalid service reference"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients/{id} [put]
// @Security     BearerAuth
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID format"})
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = clientID // Set ID from path
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateClient")
		return
	}

	c.JSON(http.StatusOK, services.MapClientToResponse(client))
}

// SetClientStatus godoc
// @Summary      Activate or deactivate a client
// @Description  Flips a client's lifecycle status. Deactivated clients keep their tasks and invoices.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Client ID" Format(uuid)
// @Param        status body      dto.SetClientStatusRequest true  "New status"
// @Success      200 {object}  dto.ClientResponse "Status changed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients/{id}/status [patch]
// @Security     BearerAuth
func (h *ClientHandler) SetClientStatus(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID format"})
		return
	}

	var req dto.SetClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = clientID // Set ID from path
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	client, err := h.service.SetClientStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "SetClientStatus")
		return
	}

	c.JSON(http.StatusOK, services.MapClientToResponse(client))
}

// DeactivateClient godoc
// @Summary      Deactivate a client
// @Description  Soft-deletes a client by setting its status to inactive. History stays intact.
// @Tags         clients
// @Produce      json
// @Param        id path      string true  "Client ID" Format(uuid)
// @Success      204 {object}  nil "Client deactivated"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients/{id} [delete]
// @Security     BearerAuth
func (h *ClientHandler) DeactivateClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID format"})
		return
	}

	req := dto.SetClientStatusRequest{ID: clientID, Status: customer.StatusInactive}
	if _, err := h.service.SetClientStatus(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "DeactivateClient")
		return
	}

	c.Status(http.StatusNoContent)
}
