// File: almanack/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"almanack/config"
	"almanack/database/kv"
	"almanack/handlers"
	"almanack/middleware"
	"almanack/routes"
	"almanack/services/auth"
	"almanack/services/store"
	"almanack/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	config.RegisterFlags(pflag.CommandLine)
	hashPassword := pflag.String("hash-password", "", "print the bcrypt hash for AUTH_PASSWORD_HASH and exit")
	pflag.Parse()

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	backend, err := kv.Open(ctx, cfg, logger.Named("kv"))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer backend.Close()

	st := store.New(ctx, backend, store.Options{
		UnitPrice: cfg.UnitPrice,
		Logger:    logger.Named("store"),
	})
	st.Subscribe(func(e store.Event) {
		logger.Debug("store event", zap.String("kind", string(e.Kind)), zap.Bool("isLoggedIn", e.LoggedIn))
	})

	var authenticator auth.Authenticator
	switch cfg.AuthMode {
	case "remote":
		authenticator = auth.NewRemoteAuthenticator(cfg.AuthURL)
	default:
		if cfg.AuthUsername == "" || cfg.AuthPasswordHash == "" {
			logger.Warn("AUTH_USERNAME or AUTH_PASSWORD_HASH not set; every login will fail")
		}
		authenticator = auth.NewLocalAuthenticator(cfg.AuthUsername, cfg.AuthPasswordHash)
	}
	loginSvc := auth.NewService(authenticator, st, cfg.LoginRatePerMin, logger.Named("auth"))

	utils.StartHealthMonitor(ctx, cfg.StoreDriver, backend, time.Minute)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(st, loginSvc)
	routes.RegisterRoutes(router, handlerBundle, cfg.CORSOrigins)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (store: %s)...", srv.Addr, cfg.StoreDriver)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
