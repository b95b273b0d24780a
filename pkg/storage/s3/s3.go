// Package s3 stores image objects in an S3 bucket or an S3 compatible
// service.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/multierr"

	"droscher.com/MyWhiskies/configs"
)

const maxDeleteKeys = 1000

// Client is the part of the S3 API the store uses.
type Client interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

type Store struct {
	client  Client
	bucket  string
	timeout time.Duration
}

// New builds a client from the default AWS credential chain. A custom
// endpoint switches to path-style addressing.
func New(ctx context.Context, conf configs.Images) (*Store, error) {
	awsConf, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsConf, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, conf.Bucket, conf.Timeout), nil
}

func NewWithClient(client Client, bucket string, timeout time.Duration) *Store {
	return &Store{client: client, bucket: bucket, timeout: timeout}
}

func (s *Store) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}

	return nil
}

func (s *Store) Copy(ctx context.Context, from string, to string) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + from),
		Key:        aws.String(to),
	})
	if err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", from, to, err)
	}

	return nil
}

// Delete removes keys in batches of at most 1000. S3 does not report
// missing keys as errors.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	var errs error

	for batch := range slices.Chunk(keys, maxDeleteKeys) {
		errs = multierr.Append(errs, s.deleteBatch(ctx, batch))
	}

	return errs
}

func (s *Store) deleteBatch(ctx context.Context, keys []string) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	output, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete objects: %w", err)
	}

	var errs error

	for _, failure := range output.Errors {
		errs = multierr.Append(errs, fmt.Errorf("failed to delete %s: %s",
			aws.ToString(failure.Key), aws.ToString(failure.Message)))
	}

	return errs
}

func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	var keys []string

	for paginator.HasMorePages() {
		page, err := s.nextPage(ctx, paginator)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, object := range page.Contents {
			keys = append(keys, aws.ToString(object.Key))
		}
	}

	return keys, nil
}

func (s *Store) nextPage(ctx context.Context, paginator *s3.ListObjectsV2Paginator) (*s3.ListObjectsV2Output, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	return paginator.NextPage(ctx)
}
