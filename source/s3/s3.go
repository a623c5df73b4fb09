package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/apfind/source"
)

// Client is the subset of the S3 API used by Opener.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Opener implements source.Opener for S3 objects.
type Opener struct {
	client Client
}

// NewOpener creates an Opener using client.
func NewOpener(client Client) *Opener {
	return &Opener{client: client}
}

// NewFromConfig creates an Opener from the default AWS configuration.
func NewFromConfig(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*Opener, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}
	return NewOpener(s3.NewFromConfig(cfg)), nil
}

// Open streams the object named "bucket/key".
func (o *Opener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	bucket, key, ok := strings.Cut(name, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: %q", source.ErrInvalidLocation, name)
	}

	resp, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil, fmt.Errorf("%w: s3://%s", source.ErrNotFound, name)
		}
		return nil, err
	}

	return resp.Body, nil
}
