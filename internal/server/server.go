package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"jobportal-backend/internal/cache"
	"jobportal-backend/internal/database"
)

// MyServer holds the shared dependencies of the HTTP layer.
type MyServer struct {
	DB    *database.DBinstanceStruct
	Cache *cache.Cache
}

// NewServer constructs the http.Server bound to PORT (default 8080) with the
// full route table registered.
func NewServer(db *database.DBinstanceStruct, c *cache.Cache) *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080
	}

	s := &MyServer{DB: db, Cache: c}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
