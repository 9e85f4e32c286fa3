package container

import (
	"context"
	"fmt"
	"time"

	"github.com/mateovidal/crmbridge/config"
	"github.com/mateovidal/crmbridge/pkg/api/handlers"
	"github.com/mateovidal/crmbridge/pkg/backup"
	"github.com/mateovidal/crmbridge/pkg/billing"
	"github.com/mateovidal/crmbridge/pkg/cache"
	"github.com/mateovidal/crmbridge/pkg/crm"
	"github.com/mateovidal/crmbridge/pkg/crmsync"
	"github.com/mateovidal/crmbridge/pkg/database"
	"github.com/mateovidal/crmbridge/pkg/domain"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/jobs"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/metrics"
	"github.com/mateovidal/crmbridge/pkg/secrets"
	"github.com/mateovidal/crmbridge/pkg/webhook"
	"github.com/mateovidal/crmbridge/pkg/whatsapp"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  logger.Logger
	DB      *database.Client
	Cache   domain.CacheRepository
	Secrets secrets.Manager
	Metrics *metrics.Metrics

	// Services
	SecretCipher    *integration.SecretCipher
	Registry        *integration.Registry
	WebhookService  *webhook.Service
	SyncManager     *crmsync.Manager
	CRMService      *crm.Service
	WhatsAppService *whatsapp.Service
	BillingService  *billing.Service
	BackupService   *backup.Service

	// Handlers
	IntegrationHandler *handlers.IntegrationHandler
	WebhookHandler     *handlers.WebhookHandler
	CRMHandler         *handlers.CRMHandler
	WhatsAppHandler    *handlers.WhatsAppHandler
	BillingHandler     *handlers.BillingHandler

	// Jobs
	CronManager *jobs.CronManager
}

// New creates a fully wired dependency container
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initHandlers()
	c.initJobs()

	c.Logger.Info("container initialized",
		"environment", cfg.APIEnvironment,
		"backup_enabled", c.BackupService != nil)

	return c, nil
}

// initInfrastructure initializes database, cache and secrets backends
func (c *Container) initInfrastructure() error {
	db, err := database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("failed to connect to database", "error", err)
		return err
	}
	c.DB = db

	cacheClient, err := cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("failed to connect to cache", "error", err)
		return err
	}
	c.Cache = cacheClient

	mgr, err := secrets.NewManager(secrets.Config{
		Backend:       c.Config.SecretsBackend,
		AWSRegion:     c.Config.AWSRegion,
		CacheDuration: 5 * time.Minute,
	})
	if err != nil {
		c.Logger.Error("failed to initialize secrets backend", "error", err)
		return err
	}
	c.Secrets = mgr

	c.Metrics = metrics.New()

	c.Logger.Info("infrastructure initialized",
		"database", "connected",
		"cache", "connected",
		"secrets_backend", c.Config.SecretsBackend)

	return nil
}

// initServices initializes all domain services
func (c *Container) initServices() error {
	cipherKey, err := c.resolveSecret(c.Config.IntegrationSecretKey, "INTEGRATION_SECRET_KEY")
	if err != nil {
		return fmt.Errorf("integration secret key unavailable: %w", err)
	}
	cipher, err := integration.NewSecretCipher(cipherKey)
	if err != nil {
		return fmt.Errorf("invalid integration secret key: %w", err)
	}
	c.SecretCipher = cipher
	c.Registry = integration.NewRegistry(c.DB.Ent, cipher, c.Logger)

	c.WebhookService = webhook.NewService(c.DB.Ent, c.Logger,
		webhook.WithTimeout(time.Duration(c.Config.WebhookTimeoutSeconds)*time.Second),
		webhook.WithMaxAttempts(c.Config.WebhookMaxAttempts),
		webhook.WithMetrics(c.Metrics),
	)

	c.SyncManager = crmsync.NewManager(c.Registry, c.WebhookService, c.Logger, c.Metrics)
	c.CRMService = crm.NewService(c.DB.Ent, c.WebhookService, c.Logger)
	c.WhatsAppService = whatsapp.NewService(c.Registry, c.Logger, c.Metrics)

	stripeKey, err := c.resolveSecret(c.Config.StripeSecretKey, "STRIPE_SECRET_KEY")
	if err != nil {
		c.Logger.Warn("stripe secret key unavailable, billing disabled", "error", err)
	}
	c.BillingService = billing.NewService(c.DB.Ent, c.Registry, c.Logger, &billing.Config{
		SecretKey:     stripeKey,
		WebhookSecret: c.Config.StripeWebhookSecret,
		SuccessURL:    c.Config.StripeSuccessURL,
		CancelURL:     c.Config.StripeCancelURL,
	})

	if c.Config.BackupEnabled {
		backupSvc, err := backup.NewService(c.DB.Ent, backup.Config{
			AWSAccessKeyID:     c.Config.AWSAccessKeyID,
			AWSSecretAccessKey: c.Config.AWSSecretAccessKey,
			AWSRegion:          c.Config.AWSRegion,
			S3Bucket:           c.Config.S3Bucket,
			RetentionDays:      c.Config.LogRetentionDays,
		}, c.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize retention export: %w", err)
		}
		c.BackupService = backupSvc
	}

	c.Logger.Info("services initialized",
		"registry", "ready",
		"webhook_service", "ready",
		"sync_manager", "ready",
		"crm_service", "ready")

	return nil
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.IntegrationHandler = handlers.NewIntegrationHandler(c.Registry, c.SyncManager)
	c.WebhookHandler = handlers.NewWebhookHandler(c.WebhookService)
	c.CRMHandler = handlers.NewCRMHandler(c.CRMService)
	c.WhatsAppHandler = handlers.NewWhatsAppHandler(c.WhatsAppService)
	c.BillingHandler = handlers.NewBillingHandler(c.BillingService)

	c.Logger.Info("handlers initialized")
}

func (c *Container) initJobs() {
	cacheClient, _ := c.Cache.(*cache.Client)
	c.CronManager = jobs.NewCronManager(
		c.Registry,
		c.SyncManager,
		c.WebhookService,
		c.BackupService,
		cacheClient,
		c.Logger,
	)
}

// resolveSecret prefers the configured value and falls back to the secrets
// backend, so AWS deployments can keep keys out of the environment.
func (c *Container) resolveSecret(configured, key string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	return c.Secrets.GetSecret(context.Background(), key)
}

// Close releases all container resources
func (c *Container) Close() error {
	if c.Secrets != nil {
		if err := c.Secrets.Close(); err != nil {
			c.Logger.Error("failed to close secrets backend", "error", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Error("failed to close cache", "error", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Error("failed to close database", "error", err)
			return err
		}
	}
	return nil
}
