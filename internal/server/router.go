package server

import (
	"net/http"

	"mirador/internal/delivery"
	"mirador/internal/geography"
	"mirador/internal/infrastructure/geo"
	"mirador/internal/reviews"
	"mirador/internal/sellers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	geographyCtrl *geography.Controller,
	reviewsCtrl *reviews.Controller,
	deliveryCtrl *delivery.Controller,
	sellersCtrl *sellers.Controller,
	boundaries *geo.Client,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/geography", func(r chi.Router) {
			r.Get("/states", geographyCtrl.HandleTopStates)
			r.Get("/cities", geographyCtrl.HandleCities)
		})

		r.Get("/reviews/states", reviewsCtrl.HandleStates)
		r.Get("/delivery/states", deliveryCtrl.HandleStates)

		r.Route("/sellers", func(r chi.Router) {
			r.Get("/top", sellersCtrl.HandleTopSellers)
			r.Get("/revenue", sellersCtrl.HandleRevenue)
			r.Get("/categories", sellersCtrl.HandleCategories)
			r.Get("/freight", sellersCtrl.HandleFreight)
			r.Get("/scores", sellersCtrl.HandleScores)
			r.Get("/bounds", sellersCtrl.HandleBounds)
		})

		r.Get("/geo/boundaries", func(w http.ResponseWriter, req *http.Request) {
			body, err := boundaries.Boundaries(req.Context())
			if err != nil {
				logger.Error("boundary fetch failed", zap.Error(err))
				http.Error(w, "boundary dataset unavailable", http.StatusBadGateway)
				return
			}
			w.Header().Set("Content-Type", "application/geo+json")
			_, _ = w.Write(body)
		})
	})

	return r
}
