// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Local.Driver {
	case LocalDriverMemory:
	case LocalDriverSQLite, LocalDriverFile:
		if cfg.Storage.Local.Path == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PersistTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" && !cfg.Storage.UseS3() {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
