package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// IdentityToken is the identity provider token for google sessions.
	IdentityToken string
	// HashKey is the HMAC key used for save request integrity.
	HashKey string
}

// ClientAdapter holds the remote vault service settings.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote vault service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the local store settings.
type ClientStorage struct {
	Local Local
}

// ClientWorkers holds the background persister settings.
type ClientWorkers struct {
	PersistTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     Log
}

// GetClientConfig builds and validates the client configuration. fs holds
// flags registered with [RegisterClientFlags] and must already be parsed;
// it may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := getStructuredConfig(fs, clientDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			IdentityToken: cfg.App.IdentityToken,
			HashKey:       cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Local: cfg.Storage.Local,
		},
		Workers: ClientWorkers{
			PersistTimeout: cfg.Workers.PersistTimeout,
		},
		Log: cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
