package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fitclass/internal/auth"
	"fitclass/internal/class"
	"fitclass/internal/config"
	"fitclass/internal/gym"
	"fitclass/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	limiter    *RateLimiter
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	router := gin.New()
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		corsMiddleware(cfg.AllowedOrigins),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		limiter.Middleware(),
	)

	gymHandler := gym.NewHandler(gym.NewService(gym.NewRepository(db)))
	classHandler := class.NewHandler(class.NewService(class.NewRepository(db)))
	reportHandler := report.NewHandler(report.NewService(report.NewRepository(db)))

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())

	router.GET("/instructors", gymHandler.ListInstructors)
	router.GET("/instructors/:id", gymHandler.GetInstructor)
	router.GET("/locations", gymHandler.ListLocations)
	router.GET("/locations/:id", gymHandler.GetLocation)

	router.GET("/classes", classHandler.ListClasses)
	router.GET("/classes/:id", classHandler.GetClass)

	router.GET("/report", reportHandler.GetReport)
	router.POST("/report", reportHandler.PostReport)

	staff := router.Group("/")
	if cfg.JWTSecret != "" {
		staff.Use(auth.AuthMiddleware(cfg.JWTSecret), auth.RequireRole(auth.RoleStaff))
	}
	{
		staff.POST("/classes", classHandler.CreateClass)
		staff.PUT("/classes/:id", classHandler.UpdateClass)
		staff.DELETE("/classes/:id", classHandler.DeleteClass)

		// form-post URLs used by the class pages
		staff.POST("/class/new", classHandler.CreateClass)
		staff.POST("/class/edit/:id", classHandler.UpdateClass)
		staff.POST("/class/delete/:id", classHandler.DeleteClass)
	}

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		db:      db,
		config:  cfg,
		limiter: limiter,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks until the server stops. A shutdown is not reported as an
// error.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}
