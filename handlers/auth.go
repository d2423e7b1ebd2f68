package handlers

import (
	"net/http"

	"handrest/middleware"
	"handrest/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and session endpoints.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterCustomerHandler provisions a customer account.
func (h *AuthHandler) RegisterCustomerHandler(c *gin.Context) {
	var req user.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, err := h.Service.RegisterCustomer(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// RegisterStaffHandler provisions a staff account with coverage.
func (h *AuthHandler) RegisterStaffHandler(c *gin.Context) {
	var req user.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, err := h.Service.RegisterStaff(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// LoginHandler signs an account in by mobile and password.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Service.Authenticate(req.Mobile, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's active session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := h.Service.Revoke(actor.ID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
