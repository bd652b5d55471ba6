package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pms-dashboard-api/internal/api"
	"github.com/vfg2006/pms-dashboard-api/internal/config"
	"github.com/vfg2006/pms-dashboard-api/internal/scheduler"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.Env, cfg.App.LogLevel, nil)
	apiErrors.SetDebug(cfg.App.IsDevelopment())

	logrus.WithFields(logrus.Fields{
		"env":       cfg.App.Env,
		"log_level": logrus.GetLevel().String(),
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesPipelineRepo := repository.NewSalesPipelineRepository(pgConn)
	employabilityRepo := repository.NewEmployabilityRepository(pgConn)
	qualityRepo := repository.NewQualityRepository(pgConn)
	deliveryRepo := repository.NewDeliveryRepository(pgConn)

	reportService := reporting.NewService(salesPipelineRepo, employabilityRepo, qualityRepo, deliveryRepo)

	importService := importing.NewService(repository.NewImportRepository(pgConn))
	importSyncService := scheduler.NewImportSyncService(importService, cfg)

	if err := importSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação da planilha")
	}

	server, err := api.New(cfg, api.Services{
		Reports:       reportService,
		SalesPipeline: recording.NewSalesPipelineService(salesPipelineRepo),
		Employability: recording.NewEmployabilityService(employabilityRepo),
		Quality:       recording.NewQualityService(qualityRepo),
		Delivery:      recording.NewDeliveryService(deliveryRepo),
		ImportSync:    importSyncService,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre o pool; banco inacessível na partida só gera aviso,
// as requisições falham com SRV_002 até a conexão voltar
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar conexão com PostgreSQL")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL indisponível na inicialização")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
