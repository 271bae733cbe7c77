package handlers

import (
	"errors"
	"log"
	"net/http"
	request "orcamento_api/internal/adapter/http/dto/request"
	response "orcamento_api/internal/adapter/http/dto/response"
	"orcamento_api/internal/adapter/http/middleware"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, logout and token checks for the admin area.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Admin login
// @Description  Returns an opaque bearer token. passwordChangeRequired tells the client to rotate the password first.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.LoginRequest  true  "Username and password"
// @Success      200          {object}  response.LoginResponse
// @Failure      401          {object}  response.LoginResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		c.JSON(http.StatusUnauthorized, response.LoginResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.LoginResponse{Success: false, Message: "Invalid username or password"})
			return
		}
		log.Printf("[auth][handler] login failed err=%v", err)
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Success:                true,
		Message:                "Login successful",
		Token:                  res.Token,
		Username:               res.Username,
		PasswordChangeRequired: res.PasswordChangeRequired,
	})
}

// Logout godoc
// @Summary      Admin logout
// @Description  Idempotent; unknown tokens are accepted.
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer token"
// @Success      200            {object}  response.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		log.Printf("[auth][handler] logout failed err=%v", err)
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// Validate godoc
// @Summary      Check a token
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer token"
// @Success      200            {boolean}  bool
// @Router       /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Validate(c.Request.Context(), middleware.BearerToken(c)))
}

// ChangePassword godoc
// @Summary      Change the admin password
// @Description  Allowed while a password change is pending. Clears the pending flag.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body      request.ChangePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /auth/password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	username := c.GetString(middleware.ContextUsername)
	if err := h.usecase.ChangePassword(c.Request.Context(), username, payload.CurrentPassword, payload.NewPassword); err != nil {
		log.Printf("[auth][handler] change-password failed username=%s err=%v", username, err)
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Password changed successfully"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "New password must have at least 8 characters and differ from the current one", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
