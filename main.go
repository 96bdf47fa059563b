package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"restaurant-finder/config"
	"restaurant-finder/handlers"
	"restaurant-finder/services"
	"restaurant-finder/utils/graceful"
	"restaurant-finder/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Outbound clients share one pooled transport
	httpClient := &http.Client{}
	geocodeService := services.NewGeocodeService(services.NewNominatimClient(cfg.NominatimURL, cfg.UserAgent, httpClient))
	poiService := services.NewPOIService(services.NewOverpassClient(cfg.OverpassURL, cfg.UserAgent, httpClient))
	finderService := services.NewFinderService(geocodeService, poiService,
		services.WithUpstreamTimeout(cfg.UpstreamTimeout),
		services.WithDisplayLocation(cfg.DisplayLocation),
	)

	router := handlers.NewRouter(
		handlers.NewFindHandler(finderService),
		handlers.NewPageHandler(web.IndexHTML),
		cfg.AllowedOrigins,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := graceful.Context(context.Background())
	defer stop()

	go func() {
		log.Printf("American Restaurant Finder running at http://localhost%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
