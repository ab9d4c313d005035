package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	DocumentRepository DocumentRepository

	closers []func() error
}

// NewStorages opens the document backend selected by cfg: S3 when a bucket
// is configured, postgres otherwise. Postgres migrations run on startup.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.UseS3() {
		repo, err := NewS3DocumentRepository(ctx, cfg.S3, logger)
		if err != nil {
			return nil, fmt.Errorf("s3 storage error: %w", err)
		}
		return &Storages{DocumentRepository: repo}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DocumentRepository: NewDocumentRepository(db, logger),
		closers:            []func() error{db.Close},
	}, nil
}

// Close releases database connections.
func (s *Storages) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
