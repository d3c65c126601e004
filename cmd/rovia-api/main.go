// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rovia/internal/config"
	httptransport "rovia/internal/http"
	"rovia/internal/http/middleware"
	"rovia/internal/infra"
	"rovia/internal/logging"
	"rovia/internal/maps"
	"rovia/internal/modules/booking"
	"rovia/internal/modules/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(os.Getenv("ROVIA_DEBUG") != "")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db init: " + err.Error())
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	routeService, err := maps.NewRouteService(cfg.Routing.APIKey, cfg.Routing.Region)
	if err != nil {
		logger.Fatal("maps init: " + err.Error())
	}
	router := maps.NewCachedRouter(routeService, redisClient, cfg.Routing.CacheTTL, logger)

	rateStore := trip.NewRateStore(dbPool)
	tripSvc := trip.NewService(router, rateStore, logger)

	source := booking.NewHTTPSource(cfg.Upstream.BookingBaseURL, cfg.Upstream.FetchTimeout)
	bookingSvc := booking.NewService(source, logger)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWTSecret)

	handler := httptransport.NewRouter(bookingSvc, tripSvc, verifier, logger)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal(err.Error())
	}
}
