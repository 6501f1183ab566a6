package places

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ai-trip-planner/internal/api"
	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

type Handler struct {
	placesService Service
	logger        *slog.Logger
}

func NewHandler(placesService Service, logger *slog.Logger) *Handler {
	return &Handler{
		placesService: placesService,
		logger:        logger,
	}
}

// SearchPlaces handles free-form place search requests.
func (h *Handler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SearchPlaces").Start(r.Context(), "SearchPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/search"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SearchPlaces"))

	var req types.PlaceSearchRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Query == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Query is required")
		return
	}
	if req.Radius == 0 {
		req.Radius = 10000
	}
	if req.MinRating == 0 {
		req.MinRating = 4.0
	}
	if req.MaxResults == 0 {
		req.MaxResults = 10
	}

	results, err := h.placesService.SearchPlaces(ctx, req.Query, req.Location, req.Radius, req.Type, req.MinRating, req.MaxResults)
	if err != nil {
		l.ErrorContext(ctx, "Place search failed", slog.Any("error", err))
		api.ErrorResponse(w, r, statusFor(err), "Place search failed")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{"results": results, "count": len(results)})
}

// AutocompletePlaces handles destination autocomplete requests.
func (h *Handler) AutocompletePlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AutocompletePlaces").Start(r.Context(), "AutocompletePlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/autocomplete"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AutocompletePlaces"))

	var req types.AutocompleteRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Input == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Input is required")
		return
	}

	suggestions, err := h.placesService.AutocompletePlaces(ctx, req.Input, req.Types)
	if err != nil {
		l.ErrorContext(ctx, "Autocomplete failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Autocomplete failed")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

// GetPlaceDetails returns the extended detail blob for one place.
func (h *Handler) GetPlaceDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetPlaceDetails").Start(r.Context(), "GetPlaceDetails", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/{placeID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetPlaceDetails"))

	placeID := chi.URLParam(r, "placeID")
	if placeID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Place ID is required")
		return
	}

	details, err := h.placesService.GetPlaceDetails(ctx, placeID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get place details", slog.Any("error", err), slog.String("placeID", placeID))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to get place details")
		return
	}
	if details == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Place not found")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, details)
}

// GetTopRestaurants returns the canned top-restaurant search for a destination.
func (h *Handler) GetTopRestaurants(w http.ResponseWriter, r *http.Request) {
	h.cannedSearch(w, r, "GetTopRestaurants", 8, h.placesService.GetTopRestaurants)
}

// GetTopAttractions returns the canned top-attraction search for a destination.
func (h *Handler) GetTopAttractions(w http.ResponseWriter, r *http.Request) {
	h.cannedSearch(w, r, "GetTopAttractions", 10, h.placesService.GetTopAttractions)
}

// GetHotels returns lodging for a destination filtered by budget level.
func (h *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetHotels").Start(r.Context(), "GetHotels", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/places/hotels/{destination}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetHotels"))

	destination := chi.URLParam(r, "destination")
	if destination == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Destination is required")
		return
	}
	budget := r.URL.Query().Get("budget")
	if budget == "" {
		budget = types.BudgetModerate
	}
	maxResults := queryInt(r, "max_results", 5)

	hotels, err := h.placesService.GetHotels(ctx, destination, budget, maxResults)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get hotels", slog.Any("error", err), slog.String("destination", destination))
		api.ErrorResponse(w, r, statusFor(err), "Failed to get hotels")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{"results": hotels, "count": len(hotels)})
}

func (h *Handler) cannedSearch(w http.ResponseWriter, r *http.Request, name string, defaultMax int, search func(ctx context.Context, destination string, maxResults int) ([]types.PlaceInfo, error)) {
	ctx, span := otel.Tracer(name).Start(r.Context(), name, trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", name))

	destination := chi.URLParam(r, "destination")
	if destination == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Destination is required")
		return
	}
	maxResults := queryInt(r, "max_results", defaultMax)

	results, err := search(ctx, destination, maxResults)
	if err != nil {
		l.ErrorContext(ctx, "Canned search failed", slog.Any("error", err), slog.String("destination", destination))
		api.ErrorResponse(w, r, statusFor(err), "Place search failed")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{"results": results, "count": len(results)})
}

// statusFor maps service errors to HTTP status codes. Validation problems are
// the caller's fault; everything else is a server-side failure.
func statusFor(err error) int {
	if errors.Is(err, types.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
