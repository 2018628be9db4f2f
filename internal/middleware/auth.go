package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "vita/internal/errors"
	"vita/internal/services"
	"vita/internal/token"
)

// Context keys for the authenticated identity.
const (
	ContextUserID      = "userID"
	ContextEmail       = "email"
	ContextDisplayName = "displayName"
)

// NewAuthMiddleware verifies the bearer token, loads the referenced user and
// attaches the authenticated identity to the context. The identity never
// includes the password hash. Requests with a missing, malformed or expired
// token are rejected before any handler runs; a valid token whose user no
// longer exists is a 404.
func NewAuthMiddleware(issuer *token.Issuer, users services.UserServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWithAppError(c, apperrors.ErrTokenExpired)
			} else {
				abortWithAppError(c, apperrors.ErrInvalidToken)
			}
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				abortWithAppError(c, appErr)
			} else {
				abortWithAppError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			}
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Set(ContextDisplayName, user.DisplayName)
		c.Next()
	}
}

// abortWithAppError writes the standard error envelope and stops the chain.
func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
