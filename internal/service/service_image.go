// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/objectstore"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

// generatedKeyPrefix is the folder of keys generated for unnamed uploads.
const generatedKeyPrefix = "restaurants"

type imageService struct {
	presigner objectstore.Presigner
	ttl       time.Duration

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewImageService constructs an ImageService issuing URLs through presigner
// that stay valid for cfg.PresignTTL.
func NewImageService(presigner objectstore.Presigner, cfg config.Objects, logger *logger.Logger) ImageService {
	return &imageService{
		presigner: presigner,
		ttl:       cfg.PresignTTL,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// PresignUpload returns one upload URL per file. A file without a name gets
// a generated key of the form restaurants/YYYY/MM/DD/<uuid>.
func (s *imageService) PresignUpload(ctx context.Context, files []models.UploadFile) ([]models.PresignedURL, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidObjectKey, validators.ErrEmptyObjectKey)
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		key := strings.TrimSpace(file.Name)
		if key == "" {
			key = s.generateKey()
		}
		keys = append(keys, key)
	}

	return s.presign(ctx, models.ObjectPut, keys)
}

// PresignUpdate returns upload URLs overwriting existing objects.
func (s *imageService) PresignUpdate(ctx context.Context, keys []string) ([]models.PresignedURL, error) {
	return s.presignKeys(ctx, models.ObjectPut, keys)
}

func (s *imageService) PresignDelete(ctx context.Context, keys []string) ([]models.PresignedURL, error) {
	return s.presignKeys(ctx, models.ObjectDelete, keys)
}

func (s *imageService) PresignGet(ctx context.Context, keys []string) ([]models.PresignedURL, error) {
	return s.presignKeys(ctx, models.ObjectGet, keys)
}

// presignKeys skips blank keys and fails when none is left.
func (s *imageService) presignKeys(ctx context.Context, op models.ObjectOperation, keys []string) ([]models.PresignedURL, error) {
	nonEmpty := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = strings.TrimSpace(key); key != "" {
			nonEmpty = append(nonEmpty, key)
		}
	}
	if len(nonEmpty) == 0 {
		logger.FromContext(ctx).Error().Str("op", string(op)).Msg("no object keys provided")
		return nil, fmt.Errorf("%w: %w", ErrInvalidObjectKey, validators.ErrEmptyObjectKey)
	}

	return s.presign(ctx, op, nonEmpty)
}

func (s *imageService) presign(ctx context.Context, op models.ObjectOperation, keys []string) ([]models.PresignedURL, error) {
	log := logger.FromContext(ctx)

	for _, key := range keys {
		if err := validators.ValidateObjectKey(key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("invalid object key")
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidObjectKey, key, err)
		}
	}

	urls := make([]models.PresignedURL, 0, len(keys))
	for _, key := range keys {
		url, err := s.presigner.Presign(ctx, op, key, s.ttl)
		if err != nil {
			log.Err(err).Str("key", key).Str("op", string(op)).Msg("presigning failed")
			return nil, fmt.Errorf("presigning %s failed: %w", key, err)
		}
		urls = append(urls, models.PresignedURL{Key: key, URL: url})
	}

	log.Debug().Str("op", string(op)).Int("count", len(urls)).Msg("presigned urls issued")
	return urls, nil
}

func (s *imageService) generateKey() string {
	return fmt.Sprintf("%s/%s/%s", generatedKeyPrefix, s.now().UTC().Format("2006/01/02"), s.ids.Generate())
}
