package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mateovidal/crmbridge/config"
	"github.com/mateovidal/crmbridge/pkg/container"
	custommiddleware "github.com/mateovidal/crmbridge/pkg/middleware"
)

func main() {
	cfg := config.Load()
	log.Printf("configuration loaded (environment: %s)", cfg.APIEnvironment)

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("failed to initialize sentry: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
	defer c.Close()

	if err := c.CronManager.SetupJobs(cfg.WebhookRetrySweepMinutes); err != nil {
		log.Fatalf("failed to setup cron jobs: %v", err)
	}
	c.CronManager.Start()

	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	inboundRateLimiter := custommiddleware.NewRateLimiter(300, 60)

	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(c.Metrics.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))
	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))
	e.Use(globalRateLimiter.Middleware())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "CRM Bridge API",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(ec echo.Context) error {
		ctx, cancel := context.WithTimeout(ec.Request().Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.Ping(ctx); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := c.Cache.Exists(ctx, "health_check"); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return ec.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	// Inbound webhooks are authenticated by signature, not JWT
	v1.POST("/webhooks/stripe", c.BillingHandler.StripeWebhook, inboundRateLimiter.Middleware())
	v1.POST("/webhooks/inbound/:provider", c.IntegrationHandler.Inbound, inboundRateLimiter.Middleware())

	protected := v1.Group("")
	protected.Use(custommiddleware.JWTAuth(cfg.JWTSecret))
	{
		integrationsGroup := protected.Group("/integrations")
		{
			integrationsGroup.POST("", c.IntegrationHandler.Create)
			integrationsGroup.GET("/:provider", c.IntegrationHandler.Get)
			integrationsGroup.PUT("/:provider", c.IntegrationHandler.Update)
			integrationsGroup.PUT("/:provider/secrets", c.IntegrationHandler.SetSecret)
			integrationsGroup.GET("/:provider/logs", c.IntegrationHandler.Logs)
			integrationsGroup.POST("/:provider/sync", c.IntegrationHandler.Sync)
			integrationsGroup.GET("/:provider/status", c.IntegrationHandler.SyncStatus)
		}

		webhooksGroup := protected.Group("/webhooks")
		{
			webhooksGroup.POST("/endpoints", c.WebhookHandler.CreateEndpoint)
			webhooksGroup.GET("/endpoints", c.WebhookHandler.ListEndpoints)
			webhooksGroup.DELETE("/endpoints/:id", c.WebhookHandler.DeleteEndpoint)
			webhooksGroup.GET("/deliveries", c.WebhookHandler.ListDeliveries)
			webhooksGroup.POST("/test", c.WebhookHandler.TestDispatch)
		}

		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.POST("", c.CRMHandler.CreateLead)
			leadsGroup.GET("", c.CRMHandler.ListLeads)
			leadsGroup.GET("/:id", c.CRMHandler.GetLead)
			leadsGroup.PATCH("/:id/status", c.CRMHandler.UpdateLeadStatus)
		}

		dealsGroup := protected.Group("/deals")
		{
			dealsGroup.POST("", c.CRMHandler.CreateDeal)
			dealsGroup.GET("", c.CRMHandler.ListDeals)
			dealsGroup.PUT("/:id/stage", c.CRMHandler.UpdateDealStage)
		}

		customersGroup := protected.Group("/customers")
		{
			customersGroup.POST("", c.CRMHandler.CreateCustomer)
			customersGroup.GET("", c.CRMHandler.ListCustomers)
			customersGroup.GET("/:id", c.CRMHandler.GetCustomer)
		}

		whatsappGroup := protected.Group("/whatsapp")
		{
			whatsappGroup.POST("/send", c.WhatsAppHandler.SendMessage)
		}

		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout", c.BillingHandler.CreateCheckout)
			billingGroup.POST("/portal", c.BillingHandler.CreatePortal)
		}
	}

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("crmbridge API starting on %s", address)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	c.CronManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped")
}
