package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/ai-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/ai-trip-planner/internal/api/places"
	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

// Sizes of the authoritative POI lists written over the model's own guesses.
const (
	topRestaurantsCount = 8
	topAttractionsCount = 10
)

// AIClient is the slice of the generative model client the generator needs.
type AIClient interface {
	GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary generation.
type Service interface {
	GenerateItinerary(ctx context.Context, req *types.TripRequest) (*types.TripItinerary, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger        *slog.Logger
	placesService places.Service
	aiClient      AIClient
}

func NewServiceImpl(placesService places.Service, aiClient AIClient, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:        logger,
		placesService: placesService,
		aiClient:      aiClient,
	}
}

// GenerateItinerary runs the full pipeline: validate, aggregate destination
// data, render the prompt, invoke the model, parse, reconcile with
// authoritative place data and validate the final document. No retries;
// any step failure aborts the whole generation.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req *types.TripRequest) (*types.TripItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.String("trip.budget", req.Budget),
	))
	defer span.End()

	l := s.logger.With(slog.String("destination", req.Destination))
	startTime := time.Now()

	itinerary, err := s.generate(ctx, l, req)

	metrics.Get().GenerationDurationSeconds.Record(ctx, time.Since(startTime).Seconds())
	metrics.Get().GenerationRequestsTotal.Add(ctx, 1)
	if err != nil {
		metrics.Get().GenerationErrorsTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("trip.total_days", itinerary.TotalDays))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return itinerary, nil
}

func (s *ServiceImpl) generate(ctx context.Context, l *slog.Logger, req *types.TripRequest) (*types.TripItinerary, error) {
	// Reject bad input before any upstream work.
	if err := req.Validate(); err != nil {
		l.WarnContext(ctx, "Trip request rejected", slog.Any("error", err))
		return nil, err
	}
	totalDays := req.TotalDays()

	budget := req.Budget
	if budget == "" {
		budget = types.BudgetModerate
	}

	data, err := s.placesService.GetDestinationData(ctx, req.Destination, budget)
	if err != nil {
		l.ErrorContext(ctx, "Failed to aggregate destination data", slog.Any("error", err))
		return nil, fmt.Errorf("aggregating destination data: %w", err)
	}

	prompt := buildTripPrompt(req, data, totalDays)

	l.DebugContext(ctx, "Invoking model",
		slog.Int("prompt_length", len(prompt)),
		slog.Int("total_days", totalDays),
	)
	response, err := s.aiClient.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		l.ErrorContext(ctx, "Model invocation failed", slog.Any("error", err))
		return nil, fmt.Errorf("invoking model: %w", err)
	}

	itinerary, err := parseItinerary(response)
	if err != nil {
		l.ErrorContext(ctx, "Failed to parse model response", slog.Any("error", err), slog.Int("response_length", len(response)))
		return nil, err
	}

	// Reconciliation: the model's own guesses for the top POI lists are
	// discarded in favor of the aggregated data, unless a list came back empty.
	if len(data.Restaurants) > 0 {
		itinerary.TopRestaurants = firstN(data.Restaurants, topRestaurantsCount)
	}
	if len(data.Attractions) > 0 {
		itinerary.TopAttractions = firstN(data.Attractions, topAttractionsCount)
	}

	// The model is told the day count but occasionally miscounts total_days;
	// the day list is the source of truth.
	if itinerary.TotalDays != len(itinerary.Days) {
		l.WarnContext(ctx, "Model total_days disagrees with day list, normalizing",
			slog.Int("total_days", itinerary.TotalDays),
			slog.Int("days", len(itinerary.Days)),
		)
		itinerary.TotalDays = len(itinerary.Days)
	}

	if err := itinerary.Validate(); err != nil {
		l.ErrorContext(ctx, "Generated itinerary failed validation", slog.Any("error", err))
		return nil, err
	}

	return itinerary, nil
}

// firstN copies the first n places into a fresh slice. The input may be
// cache-resident; the itinerary owns its nested values exclusively, so it
// must never share backing arrays with it.
func firstN(places []types.PlaceInfo, n int) []types.PlaceInfo {
	if len(places) > n {
		places = places[:n]
	}
	out := make([]types.PlaceInfo, len(places))
	copy(out, places)
	return out
}
