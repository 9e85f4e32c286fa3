package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	entintegration "github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
)

type fakeUploader struct {
	keys   []string
	bodies [][]byte
}

func (f *fakeUploader) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.keys = append(f.keys, *params.Key)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func newTestService(t *testing.T) (*Service, *fakeUploader, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	uploader := &fakeUploader{}
	svc := &Service{
		db:            client,
		s3:            uploader,
		bucket:        "crmbridge-exports",
		retentionDays: 30,
		log:           logger.Nop(),
	}
	return svc, uploader, client
}

func seedLogs(t *testing.T, client *ent.Client, age time.Duration, n int) {
	t.Helper()
	ctx := context.Background()

	integ, err := client.Integration.Create().
		SetName("zoho").
		SetProvider(entintegration.ProviderZoho).
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := client.IntegrationLog.Create().
			SetIntegrationID(integ.ID).
			SetEvent("zoho.sync").
			SetStatus("success").
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestRunNoAgedRowsIsNoOp(t *testing.T) {
	svc, uploader, client := newTestService(t)
	ctx := context.Background()

	seedLogs(t, client, time.Hour, 3)

	result, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.IntegrationLogs)
	assert.Empty(t, result.S3Key)
	assert.Empty(t, uploader.keys, "nothing uploaded when nothing aged out")

	count, err := client.IntegrationLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRunExportsAndPrunes(t *testing.T) {
	svc, uploader, client := newTestService(t)
	ctx := context.Background()

	// two aged rows, one recent
	seedLogs(t, client, 60*24*time.Hour, 2)
	_, err := client.IntegrationLog.Create().
		SetIntegrationID(1).
		SetEvent("zoho.sync").
		SetStatus("success").
		Save(ctx)
	require.NoError(t, err)

	result, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.IntegrationLogs)
	assert.Contains(t, result.S3Key, "exports/crmbridge-logs-")

	require.Len(t, uploader.bodies, 1)
	gz, err := gzip.NewReader(bytes.NewReader(uploader.bodies[0]))
	require.NoError(t, err)
	var exported archive
	require.NoError(t, json.NewDecoder(gz).Decode(&exported))
	assert.Len(t, exported.IntegrationLogs, 2)

	// only the recent row survives
	remaining, err := client.IntegrationLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
