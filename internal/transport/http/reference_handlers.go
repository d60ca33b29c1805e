package rest

import (
	"net/http"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// getReference - справочник из кэша. Недоступность данных отдаётся как
// 200 со status=error: UI показывает "нет данных, попробуйте позже".
func (h *Handler) getReference(c *gin.Context) {
	key := c.Param("key")
	endpoint, ok := domain.ReferenceEndpoint(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown reference"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	c.JSON(http.StatusOK, h.svc.Reference.GetCachedData(ctx, key, endpoint))
}

func (h *Handler) cacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.svc.Admin.Stats(c.Request.Context())})
}

func (h *Handler) cacheJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": h.svc.Admin.Jobs()})
}

func (h *Handler) clearCache(c *gin.Context) {
	n := h.svc.Admin.ClearAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"cleared": n})
}

func (h *Handler) warmUpCache(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	report, err := h.svc.Admin.WarmUp(ctx)
	if err != nil {
		h.log.Warnf(ctx, "warm-up interrupted: %v", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "warm-up interrupted", "report": report})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) listCallLogs(c *gin.Context) {
	page := httpx.PageFromQuery(c, 50, 500)

	logs, err := h.svc.Calls.RecentCalls(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "RecentCalls failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
