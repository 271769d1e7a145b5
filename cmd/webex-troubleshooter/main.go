// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/webex-troubleshooter/internal/adapter"
	"github.com/MKhiriev/webex-troubleshooter/internal/client"
	"github.com/MKhiriev/webex-troubleshooter/internal/config"
	"github.com/MKhiriev/webex-troubleshooter/internal/logger"
	"github.com/MKhiriev/webex-troubleshooter/internal/service"
	"github.com/MKhiriev/webex-troubleshooter/internal/tui"
	"github.com/MKhiriev/webex-troubleshooter/models"
)

const logRole = "webex-troubleshooter"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(os.Stdout, buildInfo)

	bootLog := logger.New(os.Stderr, logRole, zerolog.InfoLevel)
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("invalid log level")
	}
	log := logger.NewClientLogger(logRole, cfg.Log.File, level)

	webexAdapter, err := adapter.NewHTTPWebexAdapter(cfg.Adapter, buildInfo.BuildVersion(), log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create webex adapter")
	}

	services, err := service.NewClientServices(webexAdapter)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, os.Stdin, os.Stdout, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, buildInfo, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("client run error")
		bootLog.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
