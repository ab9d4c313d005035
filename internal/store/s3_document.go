// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// objectAPI is the subset of *s3.Client the repository calls.
type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3DocumentRepository stores each account's document as one JSON object
// named <prefix><accountID>.json. PutObject replaces the object atomically.
type s3DocumentRepository struct {
	client objectAPI
	bucket string
	prefix string
	logger *logger.Logger
}

// NewS3DocumentRepository builds a [DocumentRepository] for cfg.Bucket.
// Static credentials are used when both keys are configured, otherwise the
// default AWS credential chain applies. A custom endpoint switches the client
// to path style addressing for S3 compatible servers.
func NewS3DocumentRepository(ctx context.Context, cfg config.S3, log *logger.Logger) (DocumentRepository, error) {
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
		log.Err(err).Str("func", "NewS3DocumentRepository").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3DocumentRepository").Str("bucket", cfg.Bucket).Msg("using s3 document storage")

	return newS3DocumentRepository(client, cfg.Bucket, cfg.Prefix, log), nil
}

func newS3DocumentRepository(client objectAPI, bucket, prefix string, log *logger.Logger) *s3DocumentRepository {
	return &s3DocumentRepository{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: log,
	}
}

func (r *s3DocumentRepository) objectKey(accountID string) string {
	return r.prefix + url.PathEscape(accountID) + ".json"
}

func (r *s3DocumentRepository) GetDocument(ctx context.Context, accountID string) (models.VaultDocument, error) {
	log := logger.FromContext(ctx)
	key := r.objectKey(accountID)

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return models.VaultDocument{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*s3DocumentRepository.GetDocument").Str("key", key).Msg("error getting object")
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}
	defer out.Body.Close()

	var doc models.VaultDocument
	if err = json.NewDecoder(out.Body).Decode(&doc); err != nil {
		log.Err(err).Str("func", "*s3DocumentRepository.GetDocument").Str("key", key).Msg("error decoding object")
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	if doc.Passwords == nil {
		doc.Passwords = []models.EncryptedRecord{}
	}
	if doc.UpdatedAt == nil && out.LastModified != nil {
		doc.UpdatedAt = out.LastModified
	}

	return doc, nil
}

func (r *s3DocumentRepository) SaveDocument(ctx context.Context, accountID string, records []models.EncryptedRecord) error {
	log := logger.FromContext(ctx)
	key := r.objectKey(accountID)

	if records == nil {
		records = []models.EncryptedRecord{}
	}
	now := time.Now().UTC()
	payload, err := json.Marshal(models.VaultDocument{Passwords: records, UpdatedAt: &now})
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3DocumentRepository.SaveDocument").Str("key", key).Msg("error putting object")
		return fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}

	return nil
}
