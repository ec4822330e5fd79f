// SPDX-License-Identifier: MIT

// Package publish uploads the generated stylesheet to S3 compatible object
// storage so it can be served from a CDN.
package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

// PutObjectAPI is the subset of the S3 client the publisher needs
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config describes where the stylesheet goes
type Config struct {
	Bucket       string
	Key          string
	Region       string
	Endpoint     string // custom endpoint for MinIO, R2 and friends
	CacheControl string
}

// Publisher writes stylesheets to a bucket
type Publisher struct {
	client PutObjectAPI
	cfg    Config
	logger zerolog.Logger
}

// Result describes an uploaded object
type Result struct {
	Bucket string
	Key    string
	ETag   string
	Bytes  int
}

// New returns a Publisher backed by client
func New(client PutObjectAPI, cfg Config, logger zerolog.Logger) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("publish.bucket is not set")
	}
	if cfg.Key == "" {
		cfg.Key = "theme.css"
	}
	return &Publisher{client: client, cfg: cfg, logger: logger}, nil
}

// NewClient builds an S3 client from cfg. Credentials are resolved by the
// SDK's default chain: environment, shared config profiles, SSO, web identity
// and instance metadata.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Publish uploads css to the configured bucket and key.
func (p *Publisher) Publish(ctx context.Context, css string) (*Result, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.cfg.Bucket),
		Key:         aws.String(p.cfg.Key),
		Body:        strings.NewReader(css),
		ContentType: aws.String("text/css; charset=utf-8"),
	}
	if p.cfg.CacheControl != "" {
		input.CacheControl = aws.String(p.cfg.CacheControl)
	}

	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("failed to publish s3://%s/%s (%s): %w",
				p.cfg.Bucket, p.cfg.Key, apiErr.ErrorCode(), err)
		}
		return nil, fmt.Errorf("failed to publish s3://%s/%s: %w", p.cfg.Bucket, p.cfg.Key, err)
	}

	res := &Result{
		Bucket: p.cfg.Bucket,
		Key:    p.cfg.Key,
		ETag:   aws.ToString(out.ETag),
		Bytes:  len(css),
	}
	p.logger.Info().
		Str("bucket", res.Bucket).
		Str("key", res.Key).
		Str("etag", res.ETag).
		Int("bytes", res.Bytes).
		Msg("stylesheet published")
	return res, nil
}
