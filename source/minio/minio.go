package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/apfind/source"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Opener implements source.Opener for MinIO objects.
type Opener struct {
	client *minio.Client
}

// NewOpener creates an Opener using client.
func NewOpener(client *minio.Client) *Opener {
	return &Opener{client: client}
}

// New creates an Opener for endpoint with credentials from the environment.
func New(endpoint string, secure bool) (*Opener, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvMinio{},
			&credentials.EnvAWS{},
		}),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	return NewOpener(client), nil
}

// Open streams the object named "bucket/key".
func (o *Opener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	bucket, key, ok := strings.Cut(name, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: %q", source.ErrInvalidLocation, name)
	}

	obj, err := o.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, translate(err)
	}

	// GetObject is lazy; Stat surfaces a missing object before the first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, translate(err)
	}
	return obj, nil
}

func translate(err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" || errResp.Code == "NotFound" {
		return source.ErrNotFound
	}
	return err
}
