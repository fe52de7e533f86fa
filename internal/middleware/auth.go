package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/logicash/logicash-api/config"
	"github.com/logicash/logicash-api/internal/dto"
)

// UserIDKey is the gin context key the authenticated user's ID is stored
// under.
const UserIDKey = "user_id"

// RequireAuth validates the Bearer token and stores the user ID in the
// request context. Requests without a valid token are rejected with 401.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.Auth.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token claims"})
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token subject"})
			return
		}

		ctx.Set(UserIDKey, uint(sub))
		ctx.Next()
	}
}

// UserID reads the authenticated user's ID set by RequireAuth.
func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(UserIDKey)
}
