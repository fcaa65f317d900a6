package http

import (
	"context"
	"log"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/crmkit/ghl-bridge/internal/cache"
	"github.com/crmkit/ghl-bridge/internal/config"
	"github.com/crmkit/ghl-bridge/internal/ghl"
	"github.com/crmkit/ghl-bridge/internal/http/middleware"
	"github.com/crmkit/ghl-bridge/internal/metrics"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, client *ghl.Client, rds *redis.Client) *Server {
	pipelines := cache.New(rds, cfg.Cache.PipelinesTTL)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger(), middleware.RequestIDMiddleware())

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// agent discovery (unauthenticated by design)
	e.GET("/.well-known/ai-plugin.json", manifestHandler())
	e.GET("/openapi.json", openapiHandler())

	// middlewares
	authMW := middleware.APIKeyMiddleware(cfg.Auth.APIKey)
	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          rds,
		RPS:            cfg.RateLimit.RPS,
		KeyPrefix:      "rl:caller:",
		Window:         time.Second,
		RetryAfterHint: true,
	})

	// routes
	v1 := e.Group("/v1", authMW, rlMW)
	v1.POST("/contacts", createContactHandler(client))
	v1.PUT("/contacts/:id", updateContactHandler(client))
	v1.POST("/messages/sms", sendSMSHandler(client))
	v1.POST("/messages/email", sendEmailHandler(client))
	v1.GET("/pipelines", listPipelinesHandler(client, pipelines))
	v1.POST("/opportunities", createOpportunityHandler(client))
	v1.PUT("/opportunities/:id", updateOpportunityHandler(client))
	v1.POST("/campaigns/trigger", triggerCampaignHandler(client))
	v1.POST("/workflows/trigger", triggerWorkflowHandler(client))
	v1.POST("/appointments", createAppointmentHandler(client, cfg.GHL.CalendarID))
	v1.GET("/appointments", listAppointmentsHandler(client, cfg.GHL.CalendarID))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	log.Printf("http: listening on %s", addr)
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
