// Package scheduler contém os serviços de agendamento da reimportação da planilha
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/internal/config"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/importing"
)

type ImportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	File         string
}

type ImportSyncService struct {
	scheduler           *gocron.Scheduler
	importService       importing.ImportService
	config              ImportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.ImportResult
	lastError           error
}

func NewImportSyncService(importService importing.ImportService, cfg *config.Config) *ImportSyncService {
	syncConfig := ImportSyncConfig{
		CronSchedule: cfg.ImportSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.ImportSync.Enabled,
		File:         cfg.Import.File,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"file":          syncConfig.File,
	}).Info("Configuração do agendador da importação carregada")

	return &ImportSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		importService: importService,
		config:        syncConfig,
	}
}

func (s *ImportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de importação da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de importação da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunImport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na importação agendada da planilha")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de importação da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// RunImport executa uma importação; uma execução em andamento faz a nova ser ignorada
func (s *ImportSyncService) RunImport(ctx context.Context) (*domain.ImportResult, error) {
	if !s.begin() {
		logrus.Warn("Importação da planilha já está em execução")
		return nil, importing.ErrImportInProgress
	}

	return s.run(ctx)
}

// TriggerManualSync inicia uma importação em segundo plano.
// Retorna false quando já existe uma importação em andamento.
func (s *ImportSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.begin() {
		logrus.Info("Importação da planilha já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando importação manual da planilha")
	go func() {
		if _, err := s.run(ctx); err != nil {
			logrus.WithError(err).Error("Erro na importação manual da planilha")
		}
	}()

	return true
}

// begin marca a importação como em andamento, se nenhuma outra estiver
func (s *ImportSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ImportSyncService) run(ctx context.Context) (*domain.ImportResult, error) {
	result, err := s.importService.Import(ctx, s.config.File)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.lastError = err
	s.syncMutex.Unlock()

	return result, err
}

// GetStatus retorna o status atual do agendador
func (s *ImportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"file":                   s.config.File,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_result"] = *s.lastResult
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
