package middlewares

import (
	"net/http"
	"strings"

	"github.com/ChristianMoraLopez/nutriplanbackend/config"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
	"github.com/ChristianMoraLopez/nutriplanbackend/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUsuarioID = "usuarioID"
	CtxEmail     = "email"
	CtxRol       = "rol"
)

// AuthMiddleware rejects requests without a valid bearer token and exposes the
// embedded identity on the gin context.
func AuthMiddleware(jwtCfg config.JWTSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIError{
				Message: "Acceso no autorizado",
				Error:   "Se requiere un token de autenticación",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(jwtCfg, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIError{
				Message: "Acceso no autorizado",
				Error:   "Token inválido o expirado",
			})
			return
		}

		c.Set(CtxUsuarioID, claims.UsuarioID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRol, claims.Rol)
		c.Next()
	}
}

// CallerID returns the authenticated user id placed by AuthMiddleware.
func CallerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUsuarioID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CallerRol returns the role claim of the authenticated user.
func CallerRol(c *gin.Context) string {
	return c.GetString(CtxRol)
}
