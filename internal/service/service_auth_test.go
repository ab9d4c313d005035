package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_ParseToken(t *testing.T) {
	cfg := config.ServerApp{TokenSignKey: "sign-key", TokenIssuer: "go-pass-vault"}
	svc := NewAuthService(cfg, logger.Nop())

	valid, err := utils.GenerateJWTToken("go-pass-vault", "uid-1", time.Hour, "sign-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "uid-1", time.Hour, "sign-key")
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken("go-pass-vault", "uid-1", time.Hour, "other-key")
	require.NoError(t, err)

	token, err := svc.ParseToken(context.Background(), valid.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", token.AccountID)

	for name, raw := range map[string]string{
		"wrong issuer": otherIssuer.SignedString,
		"wrong key":    otherKey.SignedString,
		"garbage":      "abc.def.ghi",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
