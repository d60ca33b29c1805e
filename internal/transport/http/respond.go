package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/upstream"
	"github.com/gin-gonic/gin"
)

const genericUpstreamFailure = "upstream request failed"

// relay - ответ внешнего API как есть: status/data/message/code.
// status=error -> 400, ошибки клиента -> 5xx.
func (h *Handler) relay(c *gin.Context, endpoint string, resp *domain.UpstreamResponse, err error) {
	if err != nil {
		h.relayError(c, endpoint, err)
		return
	}

	res := domain.ResultFromUpstream(resp)
	if resp.OK() {
		c.JSON(http.StatusOK, res)
		return
	}
	if res.Message == "" {
		res.Message = genericUpstreamFailure
	}
	c.JSON(http.StatusBadRequest, res)
}

func (h *Handler) relayError(c *gin.Context, endpoint string, err error) {
	ctx := c.Request.Context()

	var (
		cfgErr  *upstream.ConfigurationError
		httpErr *upstream.HTTPError
	)
	res := domain.ErrorResult(genericUpstreamFailure)
	status := http.StatusBadGateway

	switch {
	case errors.As(err, &cfgErr):
		status = http.StatusInternalServerError
		res.Message = "upstream is not configured"
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		res.Message = "upstream request timed out"
	case errors.As(err, &httpErr):
		if msg, code, ok := httpErr.UpstreamMessage(); ok {
			res.Message, res.Code = msg, code
		}
	}

	h.log.Errorf(ctx, "upstream %s failed: %v", endpoint, err)
	c.JSON(status, res)
}
