package itinerary

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ai-trip-planner/internal/api"
	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

type Handler struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewHandler(itineraryService Service, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// TripResponse wraps a generated itinerary with its identity and timestamp.
// Persistence of trips is the caller's concern, not this service's.
type TripResponse struct {
	ID        uuid.UUID            `json:"id"`
	Request   *types.TripRequest   `json:"request"`
	Itinerary *types.TripItinerary `json:"itinerary"`
	CreatedAt time.Time            `json:"created_at"`
}

// GenerateTrip generates an AI-powered travel itinerary from real place data.
func (h *Handler) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GenerateTrip").Start(r.Context(), "GenerateTrip", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateTrip"))
	l.DebugContext(ctx, "Generate trip handler invoked")

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}

	itinerary, err := h.itineraryService.GenerateItinerary(ctx, &req)
	if err != nil {
		if errors.Is(err, types.ErrValidation) {
			l.WarnContext(ctx, "Invalid trip request", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		// Generation failures are opaque to the end user; the cause is logged.
		l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itinerary")
		return
	}

	l.InfoContext(ctx, "Itinerary generated successfully",
		slog.String("destination", req.Destination),
		slog.Int("total_days", itinerary.TotalDays),
	)
	api.WriteJSONResponse(w, r, http.StatusCreated, TripResponse{
		ID:        uuid.New(),
		Request:   &req,
		Itinerary: itinerary,
		CreatedAt: time.Now().UTC(),
	})
}
