package handler

import (
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no service is needed for construction-time tests.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.ServerConfig{
		App:    config.ServerApp{HashKey: "hash-key"},
		Server: config.ServerHTTP{HTTPAddress: ":8080"},
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), &config.ServerConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.ServerConfig{Server: config.ServerHTTP{HTTPAddress: ":8080"}}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
