// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "go-pass-vault"

	LocalDriverSQLite = "sqlite"
	LocalDriverFile   = "file"
	LocalDriverMemory = "memory"
)

// dataDir returns the per-user directory for the client's files, falling back
// to the working directory when the OS does not report one.
func dataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

func clientDefaults() *StructuredConfig {
	dir := dataDir()
	return &StructuredConfig{
		Storage: Storage{
			Local: Local{
				Driver: LocalDriverSQLite,
				Path:   filepath.Join(dir, "vault.db"),
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			PersistTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "info",
			File:  filepath.Join(dir, "vault.log"),
		},
	}
}

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: appDirName,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}
