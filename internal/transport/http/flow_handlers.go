package rest

import (
	"net/http"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// call - прямой вызов внешнего API и ретрансляция ответа.
func (h *Handler) call(c *gin.Context, endpoint string, fields domain.Fields) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.svc.Gateway.Call(ctx, endpoint, fields)
	h.relay(c, endpoint, resp, err)
}

func (h *Handler) listFlows(c *gin.Context) {
	page := httpx.PageFromQuery(c, 20, 100)
	fields := domain.NewFields().
		SetInt("limit", int64(page.Limit)).
		SetInt("offset", int64(page.Offset)).
		SetString("search", c.Query("search"))
	h.call(c, domain.EndpointFlowsList, fields)
}

func (h *Handler) getFlow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.call(c, domain.EndpointFlowsGet, domain.NewFields().SetInt("id", id))
}

func (h *Handler) createFlow(c *gin.Context) {
	var in domain.FlowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	h.call(c, domain.EndpointFlowsCreate, in.Fields())
}

func (h *Handler) updateFlow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.FlowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.call(c, domain.EndpointFlowsUpdate, in.Fields().SetInt("id", id))
}

func (h *Handler) deleteFlow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.call(c, domain.EndpointFlowsDelete, domain.NewFields().SetInt("id", id))
}

func (h *Handler) createFilter(c *gin.Context) {
	flowID, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.FilterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	in.FlowID = flowID
	h.call(c, domain.EndpointFiltersCreate, in.Fields())
}

func (h *Handler) updateFilter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.FilterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.call(c, domain.EndpointFiltersUpdate, in.Fields().SetInt("id", id))
}

func (h *Handler) deleteFilter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.call(c, domain.EndpointFiltersDelete, domain.NewFields().SetInt("id", id))
}

func (h *Handler) getStatistics(c *gin.Context) {
	flowID, ok := queryInt64(c, "flow_id")
	if !ok {
		return
	}
	q := domain.StatisticsQuery{
		FlowID:   flowID,
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		GroupBy:  c.Query("group_by"),
	}
	h.call(c, domain.EndpointStatisticsGet, q.Fields())
}

func (h *Handler) listClicks(c *gin.Context) {
	flowID, ok := queryInt64(c, "flow_id")
	if !ok {
		return
	}
	page := httpx.PageFromQuery(c, 50, 500)
	q := domain.ClicksQuery{
		FlowID:   flowID,
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	h.call(c, domain.EndpointClicksList, q.Fields())
}
