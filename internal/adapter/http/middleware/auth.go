package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUsername is the gin context key holding the authenticated admin.
const ContextUsername = "username"

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is missing or uses another scheme.
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// RequireAdmin rejects requests without a live admin session. Unless
// allowPasswordChange is set, admins that still have to rotate their password
// get 403 PASSWORD_CHANGE_REQUIRED.
func RequireAdmin(auth usecase.IAuthUseCase, allowPasswordChange bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, user, err := auth.Authorize(c.Request.Context(), BearerToken(c))
		if err != nil {
			var appErr *pkg.AppError
			if errors.Is(err, usecase.ErrInvalidToken) {
				appErr = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
			} else {
				log.Printf("[auth][middleware] authorize failed err=%v", err)
				appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		if user.MustChangePassword && !allowPasswordChange {
			appErr := pkg.NewDomainErrorSimple("PASSWORD_CHANGE_REQUIRED", "Password change required before using the admin area", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Next()
	}
}
