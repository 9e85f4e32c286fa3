package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
	"github.com/mateovidal/crmbridge/ent/webhookdelivery"
	"github.com/mateovidal/crmbridge/pkg/logger"
)

// s3Uploader is the slice of the S3 API the service needs.
type s3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds retention export configuration.
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	RetentionDays      int
}

// Service exports aged integration logs and webhook deliveries to S3 as
// gzipped JSON, then prunes them from the database.
type Service struct {
	db            *ent.Client
	s3            s3Uploader
	bucket        string
	retentionDays int
	log           logger.Logger
}

// NewService creates a new retention export service.
func NewService(db *ent.Client, cfg Config, log logger.Logger) (*Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	retention := cfg.RetentionDays
	if retention <= 0 {
		retention = 90
	}

	return &Service{
		db:            db,
		s3:            s3.NewFromConfig(awsCfg),
		bucket:        cfg.S3Bucket,
		retentionDays: retention,
		log:           log,
	}, nil
}

// Result describes one export run.
type Result struct {
	IntegrationLogs   int           `json:"integration_logs"`
	WebhookDeliveries int           `json:"webhook_deliveries"`
	S3Key             string        `json:"s3_key,omitempty"`
	Duration          time.Duration `json:"duration"`
}

type archive struct {
	ExportedAt        time.Time              `json:"exported_at"`
	Cutoff            time.Time              `json:"cutoff"`
	IntegrationLogs   []*ent.IntegrationLog  `json:"integration_logs"`
	WebhookDeliveries []*ent.WebhookDelivery `json:"webhook_deliveries"`
}

// Run exports rows older than the retention window and deletes them. When
// there is nothing to export the run is a no-op.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	cutoff := start.AddDate(0, 0, -s.retentionDays)

	logs, err := s.db.IntegrationLog.Query().
		Where(integrationlog.CreatedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query aged integration logs: %w", err)
	}

	deliveries, err := s.db.WebhookDelivery.Query().
		Where(
			webhookdelivery.CreatedAtLT(cutoff),
			webhookdelivery.NextRetryAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query aged deliveries: %w", err)
	}

	result := &Result{
		IntegrationLogs:   len(logs),
		WebhookDeliveries: len(deliveries),
	}
	if len(logs) == 0 && len(deliveries) == 0 {
		result.Duration = time.Since(start)
		return result, nil
	}

	key := fmt.Sprintf("exports/crmbridge-logs-%s.json.gz", start.UTC().Format("20060102-150405"))
	body, err := compress(archive{
		ExportedAt:        start.UTC(),
		Cutoff:            cutoff.UTC(),
		IntegrationLogs:   logs,
		WebhookDeliveries: deliveries,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(s.bucket),
		Key:             aws.String(key),
		Body:            bytes.NewReader(body),
		ContentType:     aws.String("application/json"),
		ContentEncoding: aws.String("gzip"),
	}); err != nil {
		return nil, fmt.Errorf("failed to upload export to s3: %w", err)
	}
	result.S3Key = key

	// prune only after the upload succeeded
	if _, err := s.db.IntegrationLog.Delete().
		Where(integrationlog.CreatedAtLT(cutoff)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to prune integration logs: %w", err)
	}
	if _, err := s.db.WebhookDelivery.Delete().
		Where(
			webhookdelivery.CreatedAtLT(cutoff),
			webhookdelivery.NextRetryAtIsNil(),
		).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to prune deliveries: %w", err)
	}

	result.Duration = time.Since(start)
	s.log.Info("retention export completed",
		"s3_key", key,
		"integration_logs", result.IntegrationLogs,
		"webhook_deliveries", result.WebhookDeliveries)

	return result, nil
}

func compress(a archive) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(a); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress export: %w", err)
	}
	return buf.Bytes(), nil
}
