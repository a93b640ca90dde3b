// Package http provides the gateway API server, the metrics server and their middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/vehiclebff/internal/auth/http"
	authService "github.com/allisson/vehiclebff/internal/auth/service"
	"github.com/allisson/vehiclebff/internal/config"
	gatewayHTTP "github.com/allisson/vehiclebff/internal/gateway/http"
	"github.com/allisson/vehiclebff/internal/metrics"
)

// Handlers groups every route handler mounted under /api/v1.
type Handlers struct {
	Login           *authHTTP.LoginHandler
	Appointments    *gatewayHTTP.AppointmentHandler
	Attribution     *gatewayHTTP.AttributionHandler
	Content         *gatewayHTTP.ContentHandler
	CustomerJourney *gatewayHTTP.CustomerJourneyHandler
	Messaging       *gatewayHTTP.MessagingHandler
	Valuation       *gatewayHTTP.ValuationHandler
	Vehicles        *gatewayHTTP.VehiclesHandler
}

// Server represents the gateway API server.
type Server struct {
	server       *http.Server
	logger       *slog.Logger
	router       *gin.Engine
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and every API route.
func (s *Server) SetupRouter(
	cfg *config.Config,
	handlers Handlers,
	tokens authService.TokenService,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	router := gin.New()

	// Request id first so the logger and recovery can read it
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	router.Use(RecoveryMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/api/v1")
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.IPRateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	loginChain := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		loginChain = append(loginChain,
			authHTTP.IPRateLimitMiddleware(cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, s.logger))
	}
	loginChain = append(loginChain, handlers.Login.LoginHandler)
	v1.POST("/auth/login", loginChain...)

	protected := v1.Group("")
	protected.Use(authHTTP.AuthenticationMiddleware(tokens, s.logger))
	if cfg.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	registerGatewayRoutes(protected, handlers)

	s.router = router
}

// registerGatewayRoutes mounts the relayed upstream operations.
func registerGatewayRoutes(r *gin.RouterGroup, h Handlers) {
	appointments := r.Group("/appointment")
	{
		appointments.GET("/availability/:zipCode/:customerVehicleId", h.Appointments.AvailabilityHandler)
		appointments.POST("/book", h.Appointments.BookHandler)
		appointments.POST("/:existingAppointmentId/reschedule", h.Appointments.RescheduleHandler)
		appointments.POST("/cancel/:customerVehicleId/:phoneNumber", h.Appointments.CancelHandler)
	}

	attribution := r.Group("/attribution")
	{
		attribution.POST("/visitor", h.Attribution.VisitorHandler)
		attribution.POST("/visitor/:visitorId/visit", h.Attribution.VisitHandler)
	}

	content := r.Group("/content")
	{
		content.GET("/branches", h.Content.ListBranchesHandler)
		content.GET("/branches/:branchId", h.Content.GetBranchHandler)
		content.GET("/faqs", h.Content.ListFAQsHandler)
		content.GET("/faqs/:slug", h.Content.GetFAQHandler)
		content.GET("/landing-page", h.Content.ListLandingPagesHandler)
		content.GET("/landing-page/:slug", h.Content.GetLandingPageHandler)
		content.GET("/make-model/:make", h.Content.MakeContentHandler)
		content.GET("/make-model/:make/:model", h.Content.MakeModelContentHandler)
	}

	journey := r.Group("/customer-journey")
	{
		journey.GET("/:id", h.CustomerJourney.GetHandler)
		journey.POST("", h.CustomerJourney.StartYMMHandler)
		journey.POST("/vin", h.CustomerJourney.StartVINHandler)
		journey.POST("/plate", h.CustomerJourney.StartPlateHandler)
		journey.POST("/:id/vehicle-details", h.CustomerJourney.VehicleDetailsHandler)
		journey.POST("/:id/vehicle-condition", h.CustomerJourney.VehicleConditionHandler)
		journey.POST("/:id/body-work", h.CustomerJourney.BodyWorkHandler)
		journey.GET("/:id/damage/options", h.CustomerJourney.DamageOptionsHandler)
	}

	r.POST("/scheduling/otp/request", h.Messaging.RequestOTPHandler)
	r.POST("/sms/send", h.Messaging.SendSmsHandler)

	r.POST("/valuation", h.Valuation.CreateHandler)
	r.POST("/valuation/with-damage", h.Valuation.CreateWithDamageHandler)

	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("/years", h.Vehicles.YearsHandler)
		vehicles.GET("/makes/:year", h.Vehicles.MakesHandler)
		vehicles.GET("/models/:year/:make", h.Vehicles.ModelsHandler)
		vehicles.GET("/trims/:year/:make/:model", h.Vehicles.TrimsHandler)
		vehicles.GET("/image", h.Vehicles.ImageHandler)
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready and gracefully shuts it down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic. It turns 503 once shutdown starts.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
