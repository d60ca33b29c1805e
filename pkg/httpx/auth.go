package httpx

import (
	"net/http"
	"strings"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// BearerToken - токен из заголовка "Authorization: Bearer <token>".
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware - пускает только авторизованного оператора; иначе 401.
// Оператор ("operator") кладётся в контекст для логов.
func AuthMiddleware(auth ports.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" || !auth.Authorized(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Request = c.Request.WithContext(ctxmeta.WithActor(c.Request.Context(), "operator"))
		c.Next()
	}
}
