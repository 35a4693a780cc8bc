package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/client"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-portfolio-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	args := flag.Args()
	if len(args) == 1 && args[0] == "version" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    cfg.HTTPAddress,
		RequestTimeout: cfg.RequestTimeout,
		Token:          cfg.Token,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	prompt := func(label string) (string, error) {
		return tui.PromptPassword(label, os.Stdin, os.Stderr)
	}

	app := client.NewApp(serverAdapter, prompt, os.Stdout, log)
	if err = app.Run(context.Background(), args); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
