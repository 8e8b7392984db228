package rest

import (
	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

// ListDeliveriesQueryParams holds query parameters for
// GET /webhooks/:webhook_id/deliveries
type ListDeliveriesQueryParams struct {
	Limit int `form:"limit,default=50"`
}

// ParseListDeliveriesQuery parses query parameters for the delivery history
// endpoint, capping the limit
func ParseListDeliveriesQuery(c *gin.Context) (*ListDeliveriesQueryParams, error) {
	var params ListDeliveriesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		params.Limit = 50
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}
