// Command api runs the job portal HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"jobportal-backend/internal/cache"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/server"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewDBInstance(database.ConfigFromEnv())
	if err != nil {
		log.Fatal("database failed to initialize", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	// Quick-search caching is optional; without REDIS_ADDR every search
	// hits the database.
	var c *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		c, err = cache.New(addr, os.Getenv("REDIS_PASSWORD"), redisDB, log)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", zap.Error(err))
			c = nil
		} else {
			defer func() {
				if err := c.Close(); err != nil {
					log.Warn("failed to close cache", zap.Error(err))
				}
			}()
		}
	}

	srv := server.NewServer(db, c)

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
