package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/server"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := printBuildInfo()

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterServerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("go-pass-vault-server")
	cfg, err := config.GetServerConfig(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.Log.Level)

	if cfg.App.Version == "" {
		cfg.App.Version = info.Version
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.BuildInfoView {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).View()

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)

	return info
}
