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

// TaskHandler holds dependencies for billable task operations.
type TaskHandler struct {
	service   services.TaskService
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service services.TaskService, validate *validator.Validate) *TaskHandler {
	return &TaskHandler{
		service:   service,
		validator: validate,
	}
}

// CreateTask godoc
// @Summary      Log billable work
// @Description  Creates a task with a description, positive hours and a work date against an existing client.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task body      dto.CreateTaskRequest true  "Task details"
// @Success      201 {object}  dto.TaskResponse "Task created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Client Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *TaskHandler) CreateTask(c *gin.Context) {
	// 1. Bind/Validate Request
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	// 2. Create the task
	task, err := h.service.CreateTask(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "CreateTask")
		return
	}

	// 3. Map and Return
	c.JSON(http.StatusCreated, services.MapTaskToResponse(task))
}

// GetTaskByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Param        id path      string true  "Task ID" Format(uuid)
// @Success      200 {object}  dto.TaskResponse "Successfully retrieved task"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Task Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.service.GetTaskByID(c.Request.Context(), &dto.GetTaskByIDRequest{ID: taskID})
	if err != nil {
		respondServiceError(c, err, "GetTaskByID")
		return
	}

	c.JSON(http.StatusOK, services.MapTaskToResponse(task))
}

// ListTasks godoc
// @Summary      List tasks
// @Description  Retrieves tasks newest first. Supports client, billed, platform and date-range filters plus pagination.
// @Tags         tasks
// @Produce      json
// @Param        client_id query string false "Filter by client" Format(uuid)
// @Param        billed query bool false "Filter by billed flag"
// @Param        platform query string false "Filter by platform" Enums(Mobile, Web, Other)
// @Param        from query string false "Work date lower bound (inclusive)" Format(date)
// @Param        to query string false "Work date upper bound (exclusive)" Format(date)
// @Param        limit query int false "Pagination limit" default(50)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.TaskResponse "Successfully retrieved tasks"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var req dto.ListTasksRequest
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

	tasks, err := h.service.ListTasks(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "ListTasks")
		return
	}

	c.JSON(http.StatusOK, lo.Map(tasks, func(task *ent.Task, _ int) dto.TaskResponse {
		return services.MapTaskToResponse(task)
	}))
}

// ListUnbilledTasks godoc
// @Summary      List a client's unbilled tasks
// @Description  The invoice-builder picker: every task of the client that no invoice has captured, oldest first.
// @Tags         tasks
// @Produce      json
// @Param        id path      string true  "Client ID" Format(uuid)
// @Success      200 {array}   dto.TaskResponse "Successfully retrieved unbilled tasks"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /clients/{id}/tasks/unbilled [get]
// @Security     BearerAuth
func (h *TaskHandler) ListUnbilledTasks(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID format"})
		return
	}

	tasks, err := h.service.ListUnbilledTasks(c.Request.Context(), &dto.ListUnbilledTasksRequest{ClientID: clientID})
	if err != nil {
		respondServiceError(c, err, "ListUnbilledTasks")
		return
	}

	c.JSON(http.StatusOK, lo.Map(tasks, func(task *ent.Task, _ int) dto.TaskResponse {
		return services.MapTaskToResponse(task)
	}))
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Edits an unbilled task. Tasks already captured by an invoice are frozen.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Task ID" Format(uuid)
// @Param        task body      dto.UpdateTaskRequest true  "Fields to update"
// @Success      200 {object}  dto.TaskResponse "Task updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Task Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Task is on an invoice"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = taskID // Set ID from path
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateTask")
		return
	}

	c.JSON(http.StatusOK, services.MapTaskToResponse(task))
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Removes an unbilled task. Tasks on an invoice cannot be deleted.
// @Tags         tasks
// @Produce      json
// @Param        id path      string true  "Task ID" Format(uuid)
// @Success      204 {object}  nil "Task deleted successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Task Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Task is on an invoice"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), &dto.DeleteTaskRequest{ID: taskID}); err != nil {
		respondServiceError(c, err, "DeleteTask")
		return
	}

	c.Status(http.StatusNoContent)
}
