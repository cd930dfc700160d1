package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/careerpilot/backend/config"
)

// Snapshot kinds stored for an application.
const (
	SnapshotResume      = "resume"
	SnapshotCoverLetter = "cover-letter"
)

// SnapshotService archives the exact resume and cover letter an application
// was sent with. Objects live in S3 under the owning tenant's prefix; the
// Application row stores only the object key.
type SnapshotService struct {
	s3Config *config.S3Config
}

func NewSnapshotService(s3Config *config.S3Config) *SnapshotService {
	return &SnapshotService{s3Config: s3Config}
}

// StoreSnapshot uploads content and returns the object key to persist on
// the application.
func (s *SnapshotService) StoreSnapshot(ctx context.Context, tenant uuid.UUID, kind string, content []byte) (string, error) {
	key := fmt.Sprintf("snapshots/%s/%s/%s.txt", tenant, kind, uuid.New())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return key, nil
}

// SnapshotURL returns a short-lived presigned URL for a stored snapshot.
func (s *SnapshotService) SnapshotURL(ctx context.Context, key string) (string, error) {
	return s.s3Config.GeneratePresignedURL(ctx, key, 15*time.Minute)
}
