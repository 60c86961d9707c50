package source

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"

	"github.com/guestmatch/guestmatch/pkg/roster"
)

// GCSSource reads a snapshot object from Google Cloud Storage.
type GCSSource struct {
	client *gcs.Client
	bucket string
	object string
}

// NewGCSSource creates a GCS-backed Source.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSSource(ctx context.Context, bucket, object string) (*GCSSource, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSSource{client: client, bucket: bucket, object: object}, nil
}

func (s *GCSSource) Load(ctx context.Context) (*roster.Roster, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", s.object, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", s.object, err)
	}
	return parse(s, data)
}

func (s *GCSSource) Close() error   { return s.client.Close() }
func (s *GCSSource) String() string { return "gs://" + s.bucket + "/" + s.object }
