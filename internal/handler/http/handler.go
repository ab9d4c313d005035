package http

import (
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Uploaded documents are checked against
// an HMAC keyed with hashKey; an empty key disables the check.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}
