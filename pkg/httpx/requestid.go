package httpx

import (
	"strings"

	"github.com/Gunvolt24/cloak_gw/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID - заголовок сквозного идентификатора; уходит и во внешний API.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestIDMiddleware - берёт X-Request-ID клиента или генерирует UUID,
// кладёт его в контекст и возвращает в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := cleanRequestID(c.GetHeader(HeaderRequestID))
		if !ok {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// cleanRequestID - чужой id принимается только печатным ASCII не длиннее maxRequestIDLen.
func cleanRequestID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxRequestIDLen {
		return "", false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < 0x21 || raw[i] > 0x7e {
			return "", false
		}
	}
	return raw, true
}
