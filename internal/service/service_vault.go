package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	documentRepository store.DocumentRepository

	logger *logger.Logger
}

func NewVaultService(documentRepository store.DocumentRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

func (v *vaultService) GetVault(ctx context.Context, accountID string) (models.VaultDocument, error) {
	doc, err := v.documentRepository.GetDocument(ctx, accountID)
	if err != nil {
		return models.VaultDocument{}, fmt.Errorf("get vault document: %w", err)
	}
	if doc.Passwords == nil {
		doc.Passwords = []models.EncryptedRecord{}
	}
	return doc, nil
}

func (v *vaultService) SaveVault(ctx context.Context, accountID string, req models.SaveDocumentRequest) error {
	if err := v.documentRepository.SaveDocument(ctx, accountID, req.Passwords); err != nil {
		return fmt.Errorf("save vault document: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "vaultService.SaveVault").
		Int("records", len(req.Passwords)).
		Msg("vault document replaced")
	return nil
}
