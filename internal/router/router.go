package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/ai-trip-planner/internal/api/itinerary"
	"github.com/FACorreiaa/ai-trip-planner/internal/api/places"
)

// Config contains dependencies needed for the router setup
type Config struct {
	PlacesHandler    *places.Handler
	ItineraryHandler *itinerary.Handler
	CORSOrigins      []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Heartbeat/Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Route("/places", func(r chi.Router) {
			r.Post("/search", cfg.PlacesHandler.SearchPlaces)
			r.Post("/autocomplete", cfg.PlacesHandler.AutocompletePlaces)
			r.Get("/details/{placeID}", cfg.PlacesHandler.GetPlaceDetails)
			r.Get("/restaurants/{destination}", cfg.PlacesHandler.GetTopRestaurants)
			r.Get("/attractions/{destination}", cfg.PlacesHandler.GetTopAttractions)
			r.Get("/hotels/{destination}", cfg.PlacesHandler.GetHotels)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Post("/generate", cfg.ItineraryHandler.GenerateTrip)
		})
	})

	return r
}
