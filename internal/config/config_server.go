// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ServerApp holds token and integrity settings of the remote vault service.
type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
	HashKey      string
	Version      string
}

// ServerHTTP holds listener settings.
type ServerHTTP struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// ServerStorage holds the document backend settings. S3 is used when its
// bucket is set, postgres otherwise.
type ServerStorage struct {
	DB DB
	S3 S3
}

// UseS3 reports whether documents live in object storage.
func (s ServerStorage) UseS3() bool {
	return s.S3.Bucket != ""
}

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
	Log     Log
}

// GetServerConfig builds and validates the server configuration. fs holds
// flags registered with [RegisterServerFlags] and must already be parsed;
// it may be nil.
func GetServerConfig(fs *pflag.FlagSet) (*ServerConfig, error) {
	cfg, err := getStructuredConfig(fs, serverDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			HashKey:      cfg.App.HashKey,
			Version:      cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:     cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Storage: ServerStorage{
			DB: cfg.Storage.DB,
			S3: cfg.Storage.S3,
		},
		Log: Log{Level: cfg.Log.Level},
	}

	return serverCfg, serverCfg.validate()
}
