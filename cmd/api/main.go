package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/adpulse-api/internal/api"
	"github.com/vfg2006/adpulse-api/internal/app"
	"github.com/vfg2006/adpulse-api/internal/config"
	"github.com/vfg2006/adpulse-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services := app.NewServices(cfg)

	server, err := api.New(cfg, services.Reporter, services.Auditor, services.Exporter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
