package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/job-aggregator/internal/dtos"
	"github.com/nalin-pixel/job-aggregator/internal/services"
	"github.com/rs/zerolog"
)

// SearchHandler exposes the search service over HTTP.
type SearchHandler struct {
	SearchService *services.SearchService
	Logger        zerolog.Logger
}

func NewSearchHandler(s *services.SearchService, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{SearchService: s, Logger: logger}
}

// Search is the POST /api/search endpoint.
//
// @Summary      Search job listings
// @Description  Proxies a normalized search to the configured RapidAPI job provider
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dtos.SearchRequest true "Search filters"
// @Success      200 {object} dtos.SearchResponse
// @Failure      400 {object} map[string]string
// @Failure      422 {object} dtos.ErrorResponse
// @Failure      502 {object} dtos.ErrorResponse
// @Router       /api/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	// The upstream call outlives a disconnecting client; only the client timeout bounds it.
	ctx := context.WithoutCancel(c.Request.Context())

	resp, err := h.SearchService.Search(ctx, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) writeError(c *gin.Context, err error) {
	var (
		valErr *services.ValidationError
		upErr  *services.UpstreamError
		netErr *services.NetworkError
	)

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusUnprocessableEntity, dtos.ErrorResponse{Detail: dtos.ErrorDetail{
			Message: valErr.Error(),
			Status:  http.StatusUnprocessableEntity,
		}})
	case errors.As(err, &upErr):
		c.JSON(upErr.StatusCode, dtos.ErrorResponse{Detail: dtos.ErrorDetail{
			Message:    "Upstream API error",
			Status:     upErr.StatusCode,
			Text:       upErr.Body,
			Endpoint:   upErr.URL,
			Params:     upErr.Params,
			RateLimits: upErr.RateLimits,
		}})
	case errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, dtos.ErrorResponse{Detail: dtos.ErrorDetail{
			Message: "Network error",
			Status:  http.StatusBadGateway,
			Error:   netErr.Err.Error(),
		}})
	default:
		h.Logger.Error().Err(err).Msg("unexpected search failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
	}
}
