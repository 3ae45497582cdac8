package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/millworks/prodtrack/internal"
	"github.com/millworks/prodtrack/internal/handler"
	"github.com/millworks/prodtrack/pkg/config"
	"github.com/millworks/prodtrack/pkg/db"
	projectdb "github.com/millworks/prodtrack/pkg/db/project"
	stagedb "github.com/millworks/prodtrack/pkg/db/stage"
	"github.com/millworks/prodtrack/pkg/logutils"
)

var (
	readHeaderTimeout = 10 * time.Second
	cancelTimeout     = 10 * time.Second
)

// @title						ProdTrack API
// @version					1.0.0
// @description				REST backend for tracking manufacturing projects through operator-defined production stages.
func main() {
	// Local development keeps secrets in a .env file
	if config.IsDebugMode() {
		if err := godotenv.Load(); err != nil {
			logutils.Log.Debugf("no .env file loaded: %v", err)
		}
	}
	conf := config.GetConfig()

	database, err := db.Init(conf)
	if err != nil {
		logutils.Log.Fatalf("Failed to connect storage: %s", err)
	}
	if err := db.Migrate(database); err != nil {
		logutils.Log.Fatalf("Failed to migrate schema: %s", err)
	}

	registerConfig := &handler.RegisterConfig{
		DB:          database,
		StageDB:     stagedb.NewDBService(database),
		ProjectDB:   projectdb.NewDBService(database),
		CorsOrigins: conf.Cors.AllowOrigins,
	}
	backend := internal.Register(registerConfig)

	// reference: https://gin-gonic.com/en/docs/examples/graceful-restart-or-stop
	srv := &http.Server{
		Addr:              conf.ServerAddr,
		Handler:           backend.R,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutils.Log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logutils.Log.Info("Shutdown Gin Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logutils.Log.Info("Gin Server Shutdown: ", err)
	}
	logutils.Log.Info("Gin Server exiting")
}
