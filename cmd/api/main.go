package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/labdados"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/labdados/labdadosclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.WithError(err).Warn("Configuração de log inválida, usando padrão")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	labdadosClient := labdadosclient.NewClient(cfg)
	labdadosIntegrator := labdados.New(cfg, labdadosClient)

	exportService, err := exporting.NewService(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	reportService := reporting.NewService(cfg, labdadosIntegrator, exportService)

	exportCachePurgeService := scheduler.NewExportCachePurgeService(exportService, cfg)
	if err := exportCachePurgeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache de exportação")
	}

	server, err := api.New(cfg, reportService, exportCachePurgeService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
