package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(client.Options{})
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() models.BuildInfoView {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).View()

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)

	return info
}
