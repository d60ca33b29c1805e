package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Services - зависимости HTTP-слоя.
type Services struct {
	Reference ports.ReferenceReadService
	Admin     ports.CacheAdminService
	Gateway   ports.GatewayService
	Calls     ports.CallLogReader
	Auth      ports.Authorizer
}

type Handler struct {
	svc     Services
	log     ports.Logger
	timeout time.Duration // 0 - без собственного таймаута
}

func NewHandler(svc Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{svc: svc, log: log, timeout: timeout}
}

// requestContext - контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// pathID - положительный числовой :id; иначе 400 и false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := httpx.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// queryInt64 - необязательный числовой параметр; пустой -> 0.
func queryInt64(c *gin.Context, name string) (int64, bool) {
	v, err := httpx.ParseOptionalUint(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
