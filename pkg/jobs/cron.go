package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/pkg/backup"
	"github.com/mateovidal/crmbridge/pkg/cache"
	"github.com/mateovidal/crmbridge/pkg/crmsync"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/webhook"
)

const (
	retryLockKey  = "lock:webhook:retry_sweep"
	syncLockTTL   = 10 * time.Minute
	backupLockKey = "lock:retention_export"
)

// CronManager schedules the background work: webhook redelivery sweeps,
// auto-syncs for due integrations and the nightly retention export.
type CronManager struct {
	cron     *cron.Cron
	registry *integration.Registry
	sync     *crmsync.Manager
	webhooks *webhook.Service
	backup   *backup.Service
	cache    *cache.Client
	log      logger.Logger
}

// NewCronManager creates a new cron manager. backup and cache may be nil;
// without cache the jobs run unlocked (single-instance deployments).
func NewCronManager(registry *integration.Registry, sync *crmsync.Manager, webhooks *webhook.Service, backupSvc *backup.Service, cacheClient *cache.Client, log logger.Logger) *CronManager {
	return &CronManager{
		cron:     cron.New(),
		registry: registry,
		sync:     sync,
		webhooks: webhooks,
		backup:   backupSvc,
		cache:    cacheClient,
		log:      log,
	}
}

// SetupJobs configures all scheduled jobs.
func (cm *CronManager) SetupJobs(retrySweepMinutes int) error {
	if retrySweepMinutes <= 0 {
		retrySweepMinutes = 1
	}

	_, err := cm.cron.AddFunc(fmt.Sprintf("@every %dm", retrySweepMinutes), cm.runRetrySweep)
	if err != nil {
		return fmt.Errorf("failed to schedule retry sweep: %w", err)
	}

	if _, err := cm.cron.AddFunc("@every 1m", cm.runAutoSync); err != nil {
		return fmt.Errorf("failed to schedule auto-sync: %w", err)
	}

	if cm.backup != nil {
		if _, err := cm.cron.AddFunc("0 3 * * *", cm.runRetentionExport); err != nil {
			return fmt.Errorf("failed to schedule retention export: %w", err)
		}
	}

	cm.log.Info("cron jobs configured",
		"retry_sweep_minutes", retrySweepMinutes,
		"retention_export", cm.backup != nil)
	return nil
}

// Start starts the scheduler.
func (cm *CronManager) Start() {
	cm.cron.Start()
}

// Stop stops the scheduler and waits for running jobs.
func (cm *CronManager) Stop() {
	<-cm.cron.Stop().Done()
}

func (cm *CronManager) runRetrySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if !cm.acquire(ctx, retryLockKey, 5*time.Minute) {
		return
	}
	defer cm.release(ctx, retryLockKey)

	n, err := cm.webhooks.RetryDue(ctx, time.Now())
	if err != nil {
		cm.log.Error("retry sweep failed", "error", err)
		return
	}
	if n > 0 {
		cm.log.Info("retry sweep processed deliveries", "count", n)
	}
}

func (cm *CronManager) runAutoSync() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	due, err := cm.registry.ListAutoSync(ctx)
	if err != nil {
		cm.log.Error("failed to list auto-sync integrations", "error", err)
		return
	}

	for _, integ := range due {
		if !syncDue(integ, time.Now()) {
			continue
		}
		provider := string(integ.Provider)
		lockKey := "lock:sync:" + provider

		if !cm.acquire(ctx, lockKey, syncLockTTL) {
			continue
		}
		result, err := cm.sync.Sync(ctx, provider)
		cm.release(ctx, lockKey)

		if err != nil {
			cm.log.Error("auto-sync failed", "provider", provider, "error", err)
			continue
		}
		cm.log.Info("auto-sync completed", "provider", provider, "count", result.Count)
	}
}

func (cm *CronManager) runRetentionExport() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if !cm.acquire(ctx, backupLockKey, 30*time.Minute) {
		return
	}
	defer cm.release(ctx, backupLockKey)

	if _, err := cm.backup.Run(ctx); err != nil {
		cm.log.Error("retention export failed", "error", err)
	}
}

// syncDue reports whether an integration's interval has elapsed since its
// last sync. Never-synced integrations are always due.
func syncDue(integ *ent.Integration, now time.Time) bool {
	last := integ.Config.LastSync(string(integ.Provider))
	if last == nil {
		return true
	}
	interval := time.Duration(integ.SyncIntervalMins) * time.Minute
	return now.Sub(*last) >= interval
}

func (cm *CronManager) acquire(ctx context.Context, key string, ttl time.Duration) bool {
	if cm.cache == nil {
		return true
	}
	ok, err := cm.cache.AcquireLock(ctx, key, ttl)
	if err != nil {
		cm.log.Error("failed to acquire lock", "key", key, "error", err)
		return false
	}
	return ok
}

func (cm *CronManager) release(ctx context.Context, key string) {
	if cm.cache == nil {
		return
	}
	if err := cm.cache.ReleaseLock(ctx, key); err != nil {
		cm.log.Error("failed to release lock", "key", key, "error", err)
	}
}
