package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/app"
)

const resetMessage = "all likes have been reset"

// QuoteHandler serves the /api/quotes endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// RegisterQuoteRoutes registers quote routes under rg.
// Fixed paths are registered ahead of the :id routes.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")

	quotes.GET("/random", h.GetRandom)
	quotes.GET("/top/weekly", h.GetTopWeekly)
	quotes.GET("/top/alltime", h.GetTopAllTime)
	quotes.DELETE("/likes/reset", h.ResetLikes)
	quotes.GET("", h.List)
	quotes.POST("", h.Create)

	quotes.PUT("/:id/like", h.Like)
	quotes.GET("/:id/is-liked", h.IsLiked)
	quotes.GET("/:id", h.GetByID)
	quotes.PUT("/:id", h.Update)
	quotes.DELETE("/:id", h.Delete)
}

// GetRandom handles GET /api/quotes/random.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/random [get]
func (h *QuoteHandler) GetRandom(c *gin.Context) {
	quote, err := h.service.GetRandom(c.Request.Context(), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLikedQuote(quote))
}

// List handles GET /api/quotes?page&page_size&search.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Param search query string false "Case-insensitive text or author filter"
// @Success 200 {object} dto.PaginatedQuotesResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	listing, err := h.service.List(c.Request.Context(), dto.ParseListQuery(c), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromListing(listing))
}

// GetByID handles GET /api/quotes/:id.
func (h *QuoteHandler) GetByID(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), c.Param("id"), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLikedQuote(quote))
}

// Create handles POST /api/quotes.
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !bindRequest(c, &req) {
		return
	}

	quote, err := h.service.Create(c.Request.Context(), req.Text, req.Author)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote, false))
}

// Update handles PUT /api/quotes/:id with a partial body.
func (h *QuoteHandler) Update(c *gin.Context) {
	var req dto.UpdateQuoteRequest
	if !bindRequest(c, &req) {
		return
	}

	quote, err := h.service.Update(c.Request.Context(), c.Param("id"), req.Patch(), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLikedQuote(quote))
}

// Delete handles DELETE /api/quotes/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Like handles PUT /api/quotes/:id/like.
//
// @Summary Like a quote
// @Description Records one like per caller address and returns the updated quote.
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/quotes/{id}/like [put]
func (h *QuoteHandler) Like(c *gin.Context) {
	quote, err := h.service.Like(c.Request.Context(), c.Param("id"), ClientIP(c), c.GetHeader("User-Agent"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLikedQuote(quote))
}

// IsLiked handles GET /api/quotes/:id/is-liked.
func (h *QuoteHandler) IsLiked(c *gin.Context) {
	liked, err := h.service.IsLiked(c.Request.Context(), c.Param("id"), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IsLikedResponse{IsLiked: liked})
}

// GetTopWeekly handles GET /api/quotes/top/weekly.
func (h *QuoteHandler) GetTopWeekly(c *gin.Context) {
	quote, err := h.service.TopWeekly(c.Request.Context(), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLikedQuote(quote))
}

// GetTopAllTime handles GET /api/quotes/top/alltime.
func (h *QuoteHandler) GetTopAllTime(c *gin.Context) {
	quote, err := h.service.TopAllTime(c.Request.Context(), ClientIP(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLikedQuote(quote))
}

// ResetLikes handles DELETE /api/quotes/likes/reset.
func (h *QuoteHandler) ResetLikes(c *gin.Context) {
	if err := h.service.ResetLikes(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: resetMessage})
}

// ClientIP identifies the caller for likes and is_liked lookups.
func ClientIP(c *gin.Context) string {
	return middleware.CallerIP(c)
}

// bindRequest decodes and validates a JSON body, writing a 400 on failure.
func bindRequest(c *gin.Context, v any) bool {
	err := dto.BindAndValidate(c, v)
	if err == nil {
		return true
	}

	if errors.Is(err, dto.ErrValidation) {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return false
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeTooLarge, "request body too large")
		return false
	}

	dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be valid JSON")

	return false
}
