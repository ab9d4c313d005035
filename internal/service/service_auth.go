package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService verifies identity tokens presented to the remote vault
// service. Tokens are issued elsewhere; the service only needs the shared
// sign key and the expected issuer.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens whose issuer does not
	// match are rejected.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg. All state is read-only after construction.
func NewAuthService(cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed,
// missing subject) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "authService.ParseToken").
			Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
