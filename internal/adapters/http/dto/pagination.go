package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// Page size bounds for quote listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQuery holds the raw listing parameters from the query string.
type ListQuery struct {
	Page     string `form:"page"`
	PageSize string `form:"page_size"`
	Search   string `form:"search"`
}

// ParseListQuery reads page, page_size and search, clamping instead of
// rejecting: page < 1 becomes 1, page_size outside 1..100 becomes 10.
// Unparseable numbers get the defaults.
func ParseListQuery(c *gin.Context) domain.ListParams {
	var q ListQuery
	_ = c.ShouldBindQuery(&q)

	return ClampListParams(q)
}

// ClampListParams applies the listing defaults to raw query values.
func ClampListParams(q ListQuery) domain.ListParams {
	page, err := strconv.Atoi(q.Page)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size, err := strconv.Atoi(q.PageSize)
	if err != nil || size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return domain.ListParams{Page: page, PageSize: size, Search: q.Search}
}

// PaginatedQuotesResponse is the body of GET /api/quotes.
type PaginatedQuotesResponse struct {
	Quotes     []QuoteResponse `json:"quotes"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
