package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"skibidi-db/helper"
	"skibidi-db/models"
	"skibidi-db/services"
)

const identityKey = "identity"

func AuthMiddleware(authService services.AuthService, httpHelper *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpHelper.SendUnauthorizedError(c, "Authorization header required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			httpHelper.SendUnauthorizedError(c, "Bearer token required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			httpHelper.SendAppError(c, err)
			c.Abort()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid bearer token is
// present and lets the request through anonymously otherwise.
func OptionalAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader != "" && tokenString != authHeader {
			if identity, err := authService.Authenticate(c.Request.Context(), tokenString); err == nil {
				setIdentity(c, identity)
			}
		}
		c.Next()
	}
}

func RequireRole(httpHelper *helper.HTTPHelper, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			httpHelper.SendUnauthorizedError(c, "User role not found", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		httpHelper.SendForbiddenError(c, "Insufficient permissions", httpHelper.EmptyJsonMap())
		c.Abort()
	}
}

// CurrentIdentity returns the authenticated caller, or nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *services.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*services.Identity)
	return identity
}

func setIdentity(c *gin.Context, identity *services.Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.ProfileID)
	c.Set("username", identity.Username)
	c.Set("role", identity.Role)
}
