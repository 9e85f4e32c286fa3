package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/pkg/models"
)

func TestSyncDue(t *testing.T) {
	now := time.Now()

	never := &ent.Integration{
		Provider:         "zoho",
		SyncIntervalMins: 15,
	}
	assert.True(t, syncDue(never, now), "never-synced integrations are due")

	recent := now.Add(-5 * time.Minute)
	fresh := &ent.Integration{
		Provider:         "zoho",
		SyncIntervalMins: 15,
		Config:           models.IntegrationConfig{ZohoLastSyncAt: &recent},
	}
	assert.False(t, syncDue(fresh, now))

	stale := now.Add(-20 * time.Minute)
	overdue := &ent.Integration{
		Provider:         "zoho",
		SyncIntervalMins: 15,
		Config:           models.IntegrationConfig{ZohoLastSyncAt: &stale},
	}
	assert.True(t, syncDue(overdue, now))

	// each provider reads its own stamp
	suite := &ent.Integration{
		Provider:         "suitecrm",
		SyncIntervalMins: 15,
		Config:           models.IntegrationConfig{LastSyncAt: &recent},
	}
	assert.False(t, syncDue(suite, now))
}
