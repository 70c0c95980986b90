// Package http provides the HTTP handler layer for the flight offers API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-offers-gateway/internal/adapter/http/response"
	"github.com/flight-search/flight-offers-gateway/internal/domain"
	"github.com/flight-search/flight-offers-gateway/internal/usecase"
)

// OfferHandler handles HTTP requests for flight offer endpoints.
type OfferHandler struct {
	useCase  usecase.OfferSearchUseCase
	provider string
}

// NewOfferHandler creates a new OfferHandler with the given use case.
// The provider name is echoed in response metadata.
func NewOfferHandler(uc usecase.OfferSearchUseCase, provider string) *OfferHandler {
	return &OfferHandler{
		useCase:  uc,
		provider: provider,
	}
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search for flight offers
// @Description Search for available flight offers from the upstream provider
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria"
// @Success 200 {object} SearchOffersResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream provider error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/search [post]
func (h *OfferHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	query := ToSearchQuery(&req)

	start := time.Now()
	offers, err := h.useCase.Search(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	dto := ToSearchOffersResponseDTO(query, offers, time.Since(start).Milliseconds(), h.provider)
	return response.SearchResults(c, dto)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	// Provider or outer deadline exceeded (timeout)
	if domain.IsUpstreamTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Caller abandoned the request
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Provider unreachable or returned a server error
	if domain.IsUpstreamUnavailable(err) {
		return response.BadGateway(c)
	}

	// Domain validation, including provider 4xx passed through
	if domain.IsInvalidRequest(err) {
		var fieldErr *domain.ValidationError
		if errors.As(err, &fieldErr) {
			return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if domain.IsNotFound(err) {
		return response.NotFound(c, err.Error())
	}

	if domain.IsConflict(err) {
		return response.Conflict(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
