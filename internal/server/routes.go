// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"jobportal-backend/internal/controller"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/metrics"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/service"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(
		logger.RequestLogger(),
		gin.Recovery(),
		middleware.RequestID(),
		middleware.SafeHeader(),
		metrics.Middleware(),
		middleware.EnvRateLimitMiddleware(),
	)

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	users := service.NewUserService(s.DB)
	employers := service.NewEmployerService(s.DB)
	jobs := service.NewJobService(s.DB, s.Cache)
	savedJobs := service.NewSavedJobService(s.DB)
	applications := service.NewApplyJobService(s.DB)

	authController := controller.NewAuthController(users)
	googleController := controller.NewGoogleLoginController(
		users,
		controller.DefaultGoogleOauthConfig(),
		controller.GoogleUserInfoEndpoint,
	)
	employerController := controller.NewEmployerController(employers)
	jobController := controller.NewJobController(jobs)
	savedJobController := controller.NewSavedJobController(savedJobs)
	applyJobController := controller.NewApplyJobController(applications)

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("register", authController.Register)
			authRoute.POST("login", authController.Login)
			authRoute.POST("google", googleController.Login)

			profileRoute := authRoute.Group("")
			{
				profileRoute.Use(middleware.RequireAuth())
				profileRoute.GET("profile", authController.GetProfile)
				profileRoute.PUT("profile", authController.UpdateProfile)
			}
		}

		employerRoute := api.Group("/employer")
		{
			employerRoute.POST("register", employerController.Register)
			employerRoute.POST("login", employerController.Login)
		}

		jobRoute := api.Group("/jobs")
		{
			jobRoute.GET("search", jobController.Search)
			jobRoute.GET("search/quick", jobController.QuickSearch)
			jobRoute.GET("all", jobController.GetAll)
			jobRoute.GET(":id", jobController.GetByID)
			jobRoute.POST("", middleware.RequireAuth(), middleware.RequireEmployer(), jobController.Create)
		}

		savedRoute := api.Group("/saved-jobs")
		{
			savedRoute.Use(middleware.RequireAuth())
			savedRoute.POST("", savedJobController.Save)
			savedRoute.GET("", savedJobController.List)
			savedRoute.PUT(":jobId", savedJobController.Update)
			savedRoute.DELETE(":jobId", savedJobController.Unsave)
		}

		api.POST("/apply", applyJobController.Submit)
	}

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
