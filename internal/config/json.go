package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config.
type StructuredJSONConfig struct {
	App struct {
		IdentityToken string `json:"identity_token"`
		TokenSignKey  string `json:"token_sign_key"`
		TokenIssuer   string `json:"token_issuer"`
		HashKey       string `json:"hash_key"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Local struct {
			Driver string `json:"driver"`
			Path   string `json:"path"`
		} `json:"local,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		S3 struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			Prefix          string `json:"prefix"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PersistTimeout Duration `json:"persist_timeout"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			IdentityToken: jsonCfg.App.IdentityToken,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			Local: Local{
				Driver: jsonCfg.Storage.Local.Driver,
				Path:   jsonCfg.Storage.Local.Path,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			S3: S3{
				Bucket:          jsonCfg.Storage.S3.Bucket,
				Region:          jsonCfg.Storage.S3.Region,
				Endpoint:        jsonCfg.Storage.S3.Endpoint,
				AccessKeyID:     jsonCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.S3.SecretAccessKey,
				Prefix:          jsonCfg.Storage.S3.Prefix,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PersistTimeout: time.Duration(jsonCfg.Workers.PersistTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
