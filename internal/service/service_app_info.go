package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// appInfoService answers GET /api/version.
type appInfoService struct {
	version string
}

// NewAppInfoService fails when no version is configured so a server never
// reports an empty version to clients.
func NewAppInfoService(cfg config.ServerApp, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("func", "NewAppInfoService").
		Str("version", version).
		Msg("vault api version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
