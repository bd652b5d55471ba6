package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/internal/api/handler"
	"github.com/vfg2006/pms-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/pms-dashboard-api/internal/config"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/pms-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne as dependências das rotas
type Services struct {
	Reports       reporting.ReportService
	SalesPipeline recording.RecordService[domain.SalesPipelineEntry]
	Employability recording.RecordService[domain.EmployabilityEntry]
	Quality       recording.RecordService[domain.QualityEntry]
	Delivery      recording.RecordService[domain.DeliveryEntry]
	ImportSync    handler.ImportSyncer
	Database      handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Address(),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Dashboard(services.Reports)...),
		router.WithRoutes(handler.SalesPipeline(services.Reports, services.SalesPipeline)...),
		router.WithRoutes(handler.Employability(services.Reports, services.Employability)...),
		router.WithRoutes(handler.Quality(services.Reports, services.Quality)...),
		router.WithRoutes(handler.Delivery(services.Reports, services.Delivery)...),
		router.WithRoutes(handler.ImportJobs(services.ImportSync)...),
		router.WithNotFound(handler.StaticHandler(cfg.Server.StaticDir)),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
