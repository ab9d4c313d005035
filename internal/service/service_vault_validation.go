package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) GetVault(ctx context.Context, accountID string) (models.VaultDocument, error) {
	if err := v.validator.Validate(ctx, models.Account{ID: accountID}, validators.FieldAccountID); err != nil {
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.GetVault(ctx, accountID)
}

func (v *VaultValidationService) SaveVault(ctx context.Context, accountID string, req models.SaveDocumentRequest) error {
	if err := v.validator.Validate(ctx, models.Account{ID: accountID}, validators.FieldAccountID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.SaveVault(ctx, accountID, req)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}
