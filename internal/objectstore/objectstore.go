// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package objectstore issues presigned URLs for an S3-compatible bucket
// (AWS S3, Cloudflare R2, MinIO). Objects never pass through the server:
// clients upload, fetch and delete them directly with the returned URLs.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

//go:generate mockgen -source=objectstore.go -destination=../mock/presigner_mock.go -package=mock

var (
	ErrUnsupportedOperation = errors.New("unsupported object operation")
	ErrPresign              = errors.New("error presigning object url")
)

// Presigner grants time-limited access to a single object.
type Presigner interface {
	// Presign returns a URL allowing op on key until ttl elapses.
	Presign(ctx context.Context, op models.ObjectOperation, key string, ttl time.Duration) (string, error)
}

type s3Presigner struct {
	client *s3.PresignClient
	bucket string

	logger *logger.Logger
}

// NewS3Presigner builds the S3 client once from cfg. Static credentials are
// used when both the key id and the secret are set, otherwise the default
// AWS credential chain applies.
func NewS3Presigner(ctx context.Context, cfg config.Objects, log *logger.Logger) (Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3Presigner").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Debug().
		Str("func", "NewS3Presigner").
		Str("bucket", cfg.Bucket).
		Str("endpoint", cfg.Endpoint).
		Msg("object storage presigner created")

	return &s3Presigner{
		client: s3.NewPresignClient(client),
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

// Presign implements [Presigner].
func (p *s3Presigner) Presign(ctx context.Context, op models.ObjectOperation, key string, ttl time.Duration) (string, error) {
	log := logger.FromContext(ctx)
	expires := s3.WithPresignExpires(ttl)

	var (
		url string
		err error
	)
	switch op {
	case models.ObjectPut:
		req, presignErr := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		}, expires)
		if presignErr == nil {
			url = req.URL
		}
		err = presignErr
	case models.ObjectGet:
		req, presignErr := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		}, expires)
		if presignErr == nil {
			url = req.URL
		}
		err = presignErr
	case models.ObjectDelete:
		req, presignErr := p.client.PresignDeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		}, expires)
		if presignErr == nil {
			url = req.URL
		}
		err = presignErr
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}

	if err != nil {
		log.Err(err).
			Str("func", "*s3Presigner.Presign").
			Str("operation", string(op)).
			Str("key", key).
			Msg("error presigning url")
		return "", fmt.Errorf("%w: %w", ErrPresign, err)
	}

	return url, nil
}
