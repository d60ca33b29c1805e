package httpx

import (
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger - access-лог. Служебные /metrics и /ping не пишутся,
// ответы 5xx (в том числе 502/504 от внешнего API) идут уровнем warn.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		switch path {
		case "/metrics", "/ping":
			return
		case "":
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		actor, _ := ctxmeta.ActorFromContext(ctx)
		tr, _ := ctxmeta.TraceIDFromContext(ctx)

		logf := log.Infof
		if c.Writer.Status() >= 500 {
			logf = log.Warnf
		}
		logf(ctx,
			"request id=%s actor=%s trace=%s method=%s path=%s status=%d duration=%s size=%d",
			rid, actor, tr,
			c.Request.Method, path, c.Writer.Status(),
			time.Since(start), c.Writer.Size(),
		)
	}
}
