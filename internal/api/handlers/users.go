package handlers

import (
	"log"
	"net/http"

	"timebill-api/internal/api/middleware"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for account and auth operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates an account with name, email and password. Email must be unique.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true  "Account details"
// @Success      201 {object}  dto.UserResponse "Account created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409 {object}  map[string]string "Conflict - Email already registered"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	// 1. Bind/Validate Request
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	// 2. Create the account
	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Register")
		return
	}

	// 3. Map and Return
	c.JSON(http.StatusCreated, services.MapUserToResponse(user))
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Credentials"
// @Success      200 {object}  dto.TokenResponse "Tokens issued"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Invalid credentials"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	_, tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Rotates a refresh token: the old token is revoked and a new pair is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body      dto.RefreshRequest true  "Refresh token"
// @Success      200 {object}  dto.TokenResponse "Tokens issued"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Unknown or expired refresh token"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Refresh")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes a refresh token. Idempotent: revoking an unknown token succeeds.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body      dto.LogoutRequest true  "Refresh token"
// @Success      204 {object}  nil "Token revoked"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "Logout")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMe godoc
// @Summary      Get the authenticated account
// @Description  Returns the account behind the presented access token.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  dto.UserResponse "Account details"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("GetMe: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: userID})
	if err != nil {
		respondServiceError(c, err, "GetMe")
		return
	}

	c.JSON(http.StatusOK, services.MapUserToResponse(user))
}

// UpdateMe godoc
// @Summary      Update the authenticated account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.UpdateUserRequest true  "Fields to update"
// @Success      200 {object}  dto.UserResponse "Account updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("UpdateMe: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = userID
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	user, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateMe")
		return
	}

	c.JSON(http.StatusOK, services.MapUserToResponse(user))
}

// DeleteMe godoc
// @Summary      Delete the authenticated account
// @Tags         auth
// @Produce      json
// @Success      204 {object}  nil "Account deleted"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("DeleteMe: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteUserRequest{ID: userID}); err != nil {
		respondServiceError(c, err, "DeleteMe")
		return
	}

	c.Status(http.StatusNoContent)
}
