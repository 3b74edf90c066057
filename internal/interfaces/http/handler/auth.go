package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Tanner253/BigsAckies-sub001/internal/application/identity"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/auth"
	"github.com/Tanner253/BigsAckies-sub001/internal/interfaces/http/middleware"
)

// AuthHandler handles registration and authentication requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService}
}

// Register creates a new customer account
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// Login authenticates with email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identity.RefreshInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// logoutRequest optionally carries the refresh token so it can be revoked
// together with the access token.
type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout revokes the current access token and, when provided, the refresh
// token.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input := identity.LogoutInput{
		AccessJTI: claims.ID,
		AccessTTL: claims.GetRemainingTTL(),
	}

	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		if refreshClaims, err := h.jwtService.ValidateRefreshToken(req.RefreshToken); err == nil {
			input.RefreshJTI = refreshClaims.ID
			input.RefreshTTL = refreshClaims.GetRemainingTTL()
		}
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Me returns the authenticated account
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
