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

// InvoiceHandler holds dependencies for invoice operations.
type InvoiceHandler struct {
	service   services.InvoiceService
	validator *validator.Validate
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service services.InvoiceService, validate *validator.Validate) *InvoiceHandler {
	return &InvoiceHandler{
		service:   service,
		validator: validate,
	}
}

// PreviewInvoice godoc
// @Summary      Preview an invoice
// @Description  Prices a task selection against the client's hourly rate without persisting anything. Nothing gets billed.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        selection body      dto.PreviewInvoiceRequest true  "Client and task selection"
// @Success      200 {object}  dto.InvoicePreviewResponse "Computed preview"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input, empty or cross-client selection"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client or task not found"
// @Failure      409 {object}  map[string]string "Conflict - Selection contains billed tasks"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/preview [post]
// @Security     BearerAuth
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	// 1. Bind/Validate Request
	var req dto.PreviewInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	// 2. Compose without persisting
	draft, err := h.service.PreviewInvoice(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "PreviewInvoice")
		return
	}

	// 3. Map and Return
	c.JSON(http.StatusOK, services.MapDraftToPreview(draft))
}

// CreateInvoice godoc
// @Summary      Generate an invoice
// @Description  Creates an invoice from a selection of the client's unbilled tasks. Amounts are computed server-side and the selected tasks are marked billed in the same transaction.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice body      dto.CreateInvoiceRequest true  "Invoice details (client, task selection, optional tax rate and presentation fields)"
// @Success      201 {object}  dto.InvoiceResponse "Invoice created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input, empty or cross-client selection"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client or task not found"
// @Failure      409 {object}  map[string]string "Conflict - Selection contains billed tasks"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices [post]
// @Security     BearerAuth
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	// 1. Bind/Validate Request
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	// 2. Compose, persist and bill atomically
	invoice, err := h.service.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "CreateInvoice")
		return
	}

	// 3. Map and Return
	c.JSON(http.StatusCreated, services.MapInvoiceToResponse(invoice))
}

// GetInvoiceByID godoc
// @Summary      Get an invoice by ID
// @Description  Retrieves an invoice together with its frozen line items.
// @Tags         invoices
// @Produce      json
// @Param        id path      string true  "Invoice ID" Format(uuid)
// @Success      200 {object}  dto.InvoiceResponse "Successfully retrieved invoice"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/{id} [get]
// @Security     BearerAuth
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	invoice, err := h.service.GetInvoiceByID(c.Request.Context(), &dto.GetInvoiceByIDRequest{ID: invoiceID})
	if err != nil {
		respondServiceError(c, err, "GetInvoiceByID")
		return
	}

	c.JSON(http.StatusOK, services.MapInvoiceToResponse(invoice))
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Retrieves invoices newest first. Supports client and status filters plus pagination. Line items are omitted from list responses.
// @Tags         invoices
// @Produce      json
// @Param        client_id query string false "Filter by client" Format(uuid)
// @Param        status query string false "Filter by status" Enums(draft, sent, paid, overdue)
// @Param        limit query int false "Pagination limit" default(50)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.InvoiceResponse "Successfully retrieved invoices"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices [get]
// @Security     BearerAuth
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req dto.ListInvoicesRequest
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

	invoices, err := h.service.ListInvoices(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "ListInvoices")
		return
	}

	c.JSON(http.StatusOK, lo.Map(invoices, func(inv *ent.Invoice, _ int) dto.InvoiceResponse {
		return services.MapInvoiceToResponse(inv)
	}))
}

// ListClientInvoices godoc
// @Summary      List a client's invoices
// @Description  Retrieves every invoice billed to one client, newest first. Supports status filtering and pagination.
// @Tags         invoices
// @Produce      json
// @Param        id path      string true  "Client ID" Format(uuid)
// @Param        status query string false "Filter by status" Enums(draft, sent, paid, overdue)
// @Param        limit query int false "Pagination limit" default(50)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.InvoiceResponse "Successfully retrieved invoices"
// @Failure      400 {object}  map[string]string "Invalid ID format or query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients/{id}/invoices [get]
// @Security     BearerAuth
func (h *InvoiceHandler) ListClientInvoices(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID format"})
		return
	}

	var req dto.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.ClientID = &clientID // The path wins over any query filter
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

	invoices, err := h.service.ListInvoices(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "ListClientInvoices")
		return
	}

	c.JSON(http.StatusOK, lo.Map(invoices, func(inv *ent.Invoice, _ int) dto.InvoiceResponse {
		return services.MapInvoiceToResponse(inv)
	}))
}

// UpdateInvoice godoc
// @Summary      Edit an invoice
// @Description  Re-prices the invoice against a new task selection. Dropped tasks return to the unbilled pool, added tasks get billed, all atomically. Paid invoices are immutable.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Invoice ID" Format(uuid)
// @Param        invoice body      dto.UpdateInvoiceRequest true  "New task selection and optional field overrides"
// @Success      200 {object}  dto.InvoiceResponse "Invoice updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or selection"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Invoice is paid or selection contains foreign billed tasks"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/{id} [put]
// @Security     BearerAuth
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = invoiceID // Set ID from path
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	invoice, err := h.service.UpdateInvoice(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateInvoice")
		return
	}

	c.JSON(http.StatusOK, services.MapInvoiceToResponse(invoice))
}

// UpdateInvoiceStatus godoc
// @Summary      Update invoice status
// @Description  Moves an invoice through its lifecycle: draft to sent, sent to paid or overdue, overdue to paid. Paid is terminal.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Invoice ID" Format(uuid)
// @Param        status body      dto.UpdateInvoiceStatusRequest true  "New status"
// @Success      200 {object}  dto.InvoiceResponse "Status updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or status transition not allowed"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/{id}/status [patch]
// @Security     BearerAuth
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = invoiceID // Set ID from path
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	invoice, err := h.service.UpdateInvoiceStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateInvoiceStatus")
		return
	}

	c.JSON(http.StatusOK, services.MapInvoiceToResponse(invoice))
}

// DeleteInvoice godoc
// @Summary      Void an invoice
// @Description  Deletes an invoice and returns its tasks to the unbilled pool in one transaction. Paid invoices cannot be voided.
// @Tags         invoices
// @Produce      json
// @Param        id path      string true  "Invoice ID" Format(uuid)
// @Success      204 {object}  nil "Invoice voided successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Invoice is paid"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/{id} [delete]
// @Security     BearerAuth
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), &dto.DeleteInvoiceRequest{ID: invoiceID}); err != nil {
		respondServiceError(c, err, "DeleteInvoice")
		return
	}

	c.Status(http.StatusNoContent)
}
