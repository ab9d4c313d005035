package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	AuthService    AuthService
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	vault := NewVaultValidationService().Wrap(NewVaultService(storages.DocumentRepository, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		VaultService:   vault,
		AppInfoService: appInfo,
	}, nil
}
