package places

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/ai-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for place search operations.
type Service interface {
	SearchPlaces(ctx context.Context, query, location string, radius int, placeType string, minRating float64, maxResults int) ([]types.PlaceInfo, error)
	GetPlaceDetails(ctx context.Context, placeID string) (map[string]interface{}, error)
	AutocompletePlaces(ctx context.Context, input, typeFilter string) ([]types.AutocompleteSuggestion, error)
	GetTopRestaurants(ctx context.Context, destination string, maxResults int) ([]types.PlaceInfo, error)
	GetTopAttractions(ctx context.Context, destination string, maxResults int) ([]types.PlaceInfo, error)
	GetHotels(ctx context.Context, destination, budget string, maxResults int) ([]types.PlaceInfo, error)
	GetDestinationData(ctx context.Context, destination, budget string) (*types.DestinationData, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger       *slog.Logger
	client       *GoogleClient
	searchCache  *PlaceCache
	detailsCache *cache.Cache
}

func NewServiceImpl(client *GoogleClient, searchCache *PlaceCache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		client:       client,
		searchCache:  searchCache,
		detailsCache: cache.New(DefaultCacheTTL, 10*time.Minute),
	}
}

// searchCacheKey builds the cache key for a search. The key is the exact
// parameter tuple: two queries differing only in capitalization or parameter
// order are distinct entries. Known limitation, kept for predictability.
func searchCacheKey(query, location, placeType string, minRating float64) string {
	return fmt.Sprintf("%s:%s:%s:%g", query, location, placeType, minRating)
}

// SearchPlaces runs a Places text search with cache-first lookup. Upstream
// results are filtered to rating >= minRating, truncated to the first
// maxResults matches in upstream relevance order, then sorted descending by
// (rating, total ratings). The sort happens after truncation, so the result
// is the first N relevant matches re-ordered for presentation, not the true
// top N by rating.
func (s *ServiceImpl) SearchPlaces(ctx context.Context, query, location string, radius int, placeType string, minRating float64, maxResults int) ([]types.PlaceInfo, error) {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "SearchPlaces")
	defer span.End()
	span.SetAttributes(
		attribute.String("places.query", query),
		attribute.Float64("places.min_rating", minRating),
		attribute.Int("places.max_results", maxResults),
	)

	if minRating < 0 || minRating > 5 {
		return nil, fmt.Errorf("%w: min_rating must be in [0,5]", types.ErrValidation)
	}
	if maxResults < 1 || maxResults > 20 {
		return nil, fmt.Errorf("%w: max_results must be in [1,20]", types.ErrValidation)
	}

	key := searchCacheKey(query, location, placeType, minRating)
	if cached, found := s.searchCache.Get(key); found {
		metrics.Get().PlacesCacheHitsTotal.Add(ctx, 1)
		span.SetStatus(codes.Ok, "Served from cache")
		return cached, nil
	}
	metrics.Get().PlacesCacheMissesTotal.Add(ctx, 1)

	resp, err := s.client.TextSearch(ctx, query, location, radius, placeType)
	if err != nil {
		s.logger.ErrorContext(ctx, "Places text search failed", slog.Any("error", err), slog.String("query", query))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Text search failed")
		return nil, err
	}
	metrics.Get().PlacesRequestsTotal.Add(ctx, 1)

	if resp.Status != "OK" {
		// A clean non-OK status degrades to an empty result, it is not an error.
		s.logger.WarnContext(ctx, "Places API returned non-OK status",
			slog.String("status", resp.Status),
			slog.String("error_message", resp.ErrorMessage),
			slog.String("query", query),
		)
		span.SetStatus(codes.Ok, "Upstream degraded to empty result")
		return []types.PlaceInfo{}, nil
	}

	places := make([]types.PlaceInfo, 0, maxResults)
	for _, result := range resp.Results {
		if len(places) >= maxResults {
			break
		}
		if result.Rating < minRating {
			continue
		}
		places = append(places, s.mapResult(result))
	}

	sortByRating(places)

	s.searchCache.Set(key, places)
	span.SetAttributes(attribute.Int("places.count", len(places)))
	span.SetStatus(codes.Ok, "Places retrieved")
	return places, nil
}

func (s *ServiceImpl) mapResult(result types.GooglePlaceResult) types.PlaceInfo {
	photoURL := ""
	if len(result.Photos) > 0 {
		photoURL = s.client.PhotoURL(result.Photos[0].PhotoReference)
	}

	place := types.PlaceInfo{
		Name:         result.Name,
		Address:      result.FormattedAddress,
		Rating:       result.Rating,
		TotalRatings: result.UserRatingsTotal,
		PriceLevel:   result.PriceLevel,
		Types:        result.Types,
		PhotoURL:     photoURL,
		PlaceID:      result.PlaceID,
	}
	if loc := result.Geometry.Location; loc != nil {
		lat, lng := loc.Lat, loc.Lng
		place.Latitude = &lat
		place.Longitude = &lng
	}
	return place
}

// sortByRating orders places descending by rating, then by review count.
func sortByRating(places []types.PlaceInfo) {
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].TotalRatings > places[j].TotalRatings
	})
}

// GetPlaceDetails fetches the extended field set for one place. Results are
// cached independently of text searches. A non-OK status reads as a miss.
func (s *ServiceImpl) GetPlaceDetails(ctx context.Context, placeID string) (map[string]interface{}, error) {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "GetPlaceDetails")
	defer span.End()
	span.SetAttributes(attribute.String("places.place_id", placeID))

	cacheKey := "detail:" + placeID
	if cached, found := s.detailsCache.Get(cacheKey); found {
		if details, ok := cached.(map[string]interface{}); ok {
			span.SetStatus(codes.Ok, "Served from cache")
			return details, nil
		}
	}

	resp, err := s.client.Details(ctx, placeID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Place details request failed", slog.Any("error", err), slog.String("placeID", placeID))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Details request failed")
		return nil, err
	}
	metrics.Get().PlacesRequestsTotal.Add(ctx, 1)

	if resp.Status != "OK" {
		s.logger.WarnContext(ctx, "Place details returned non-OK status",
			slog.String("status", resp.Status), slog.String("placeID", placeID))
		span.SetStatus(codes.Ok, "No details available")
		return nil, nil
	}

	s.detailsCache.Set(cacheKey, resp.Result, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Details retrieved")
	return resp.Result, nil
}

// AutocompletePlaces returns place suggestions for a partial input. Inputs
// change too rapidly for caching to pay off, so every call goes upstream.
func (s *ServiceImpl) AutocompletePlaces(ctx context.Context, input, typeFilter string) ([]types.AutocompleteSuggestion, error) {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "AutocompletePlaces")
	defer span.End()

	if typeFilter == "" {
		typeFilter = "(cities)"
	}

	resp, err := s.client.Autocomplete(ctx, input, typeFilter)
	if err != nil {
		s.logger.ErrorContext(ctx, "Autocomplete request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Autocomplete failed")
		return nil, err
	}
	metrics.Get().PlacesRequestsTotal.Add(ctx, 1)

	if resp.Status != "OK" {
		s.logger.WarnContext(ctx, "Autocomplete returned non-OK status", slog.String("status", resp.Status))
		span.SetStatus(codes.Ok, "Upstream degraded to empty result")
		return []types.AutocompleteSuggestion{}, nil
	}

	suggestions := make([]types.AutocompleteSuggestion, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		suggestions = append(suggestions, types.AutocompleteSuggestion{
			Description:   prediction.Description,
			PlaceID:       prediction.PlaceID,
			MainText:      prediction.StructuredFormatting.MainText,
			SecondaryText: prediction.StructuredFormatting.SecondaryText,
		})
	}

	span.SetStatus(codes.Ok, "Suggestions retrieved")
	return suggestions, nil
}

// GetTopRestaurants returns highly rated restaurants at a destination.
func (s *ServiceImpl) GetTopRestaurants(ctx context.Context, destination string, maxResults int) ([]types.PlaceInfo, error) {
	return s.SearchPlaces(ctx, fmt.Sprintf("best restaurants in %s", destination), "", 0, "restaurant", 4.0, maxResults)
}

// GetTopAttractions returns highly rated tourist attractions at a destination.
func (s *ServiceImpl) GetTopAttractions(ctx context.Context, destination string, maxResults int) ([]types.PlaceInfo, error) {
	return s.SearchPlaces(ctx, fmt.Sprintf("top tourist attractions in %s", destination), "", 0, "tourist_attraction", 4.0, maxResults)
}

// GetHotels returns lodging options matching the budget level.
func (s *ServiceImpl) GetHotels(ctx context.Context, destination, budget string, maxResults int) ([]types.PlaceInfo, error) {
	var query string
	switch budget {
	case types.BudgetLow:
		query = fmt.Sprintf("budget hotels in %s", destination)
	case types.BudgetLuxury:
		query = fmt.Sprintf("luxury hotels in %s", destination)
	default:
		query = fmt.Sprintf("good hotels in %s", destination)
	}
	return s.SearchPlaces(ctx, query, "", 0, "lodging", 3.5, maxResults)
}

// GetDestinationData fans out the restaurant, attraction and hotel queries
// concurrently and joins all three. A transport failure on any branch fails
// the whole aggregation; a degraded-empty branch just yields an empty list.
func (s *ServiceImpl) GetDestinationData(ctx context.Context, destination, budget string) (*types.DestinationData, error) {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "GetDestinationData")
	defer span.End()
	span.SetAttributes(
		attribute.String("places.destination", destination),
		attribute.String("places.budget", budget),
	)

	data := &types.DestinationData{
		Destination: destination,
		Budget:      budget,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		restaurants, err := s.GetTopRestaurants(gctx, destination, 8)
		if err != nil {
			return fmt.Errorf("fetching restaurants: %w", err)
		}
		data.Restaurants = restaurants
		return nil
	})
	g.Go(func() error {
		attractions, err := s.GetTopAttractions(gctx, destination, 10)
		if err != nil {
			return fmt.Errorf("fetching attractions: %w", err)
		}
		data.Attractions = attractions
		return nil
	})
	g.Go(func() error {
		hotels, err := s.GetHotels(gctx, destination, budget, 5)
		if err != nil {
			return fmt.Errorf("fetching hotels: %w", err)
		}
		data.Hotels = hotels
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Destination data aggregation failed", slog.Any("error", err), slog.String("destination", destination))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Aggregation failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("places.restaurants", len(data.Restaurants)),
		attribute.Int("places.attractions", len(data.Attractions)),
		attribute.Int("places.hotels", len(data.Hotels)),
	)
	span.SetStatus(codes.Ok, "Destination data aggregated")
	return data, nil
}
