package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	api "github.com/noorbagus/louva-app-sub000/internal/api"
	db "github.com/noorbagus/louva-app-sub000/internal/db"
	interf "github.com/noorbagus/louva-app-sub000/internal/interfaces"
	services "github.com/noorbagus/louva-app-sub000/internal/services"
	otel "github.com/noorbagus/louva-app-sub000/observability/otel"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("LOYALTY_PORT")
	if port == "" {
		panic("env LOYALTY_PORT is not set")
	}

	// tracing
	shutdown := otel.InitTracer(context.Background())
	defer shutdown()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// cache
	var redis interf.CacheStorage
	redis, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	}

	// membership rules
	var rules interf.RuleStorage
	rules, err = db.NewRulesDB()
	if err != nil {
		panic(err)
	}

	// services + api handlers
	serv := services.NewLoyaltyService(logger, storage, redis, rules)
	r := api.NewHandler(serv, storage, rules, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "loyalty"),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
