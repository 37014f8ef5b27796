package http

import (
	"github.com/gin-gonic/gin"

	"dayflow/internal/shopping"
	"dayflow/pkg/response"
)

// ParseList godoc
// @Summary     Parse a shopping list
// @Description Splits free text like "2kg rice, milk x2, bananas" into structured items with quantity, unit and aisle category.
// @Tags        Shopping
// @Accept      json
// @Produce     json
// @Param       body body parseListReq true "List text"
// @Success     200 {object} parseListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/shopping/parse [POST]
func (h *handler) ParseList(c *gin.Context) {
	ctx := c.Request.Context()

	var req parseListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	items := shopping.ParseList(req.Text)
	h.l.Debugf(ctx, "parsed %d shopping items", len(items))

	response.OK(c, h.newParseListResp(items))
}
