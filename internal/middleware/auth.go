package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/auth"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
)

type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthMiddleware rejects requests before any handler logic runs.
// A missing credential is 401, a credential that fails verification is
// 400: the two outcomes are distinct parts of the API contract.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "Authorization token is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "Authorization header format must be Bearer {token}"))
			return
		}

		tokenString := parts[1]

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, types.NewError(types.ErrInvalidCredential, "Invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, types.NewError(types.ErrInvalidCredential, "Invalid token claims"))
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, types.NewError(types.ErrInvalidCredential, "Invalid user ID in token claims"))
			return
		}

		userID := uint(userIDFloat)

		var user models.User

		if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, types.NewError(types.ErrInvalidCredential, "User not found"))
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		ctx.Next()
	}
}

// RequireRole is a pure equality check against the authenticated
// principal's role. No hierarchy, no multi-role support.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok || user.Role != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, types.NewError(types.ErrForbidden, "Access forbidden"))
			return
		}

		ctx.Next()
	}
}
