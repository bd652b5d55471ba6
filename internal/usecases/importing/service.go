package importing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ImportService interface {
	// Import substitui o conteúdo das quatro tabelas pelo conteúdo da planilha em path
	Import(ctx context.Context, path string) (*domain.ImportResult, error)
}

type Service struct {
	importRepository repository.ImportRepository
	now              func() time.Time
}

func NewService(importRepository repository.ImportRepository) ImportService {
	return &Service{
		importRepository: importRepository,
		now:              time.Now,
	}
}

func (s *Service) Import(ctx context.Context, path string) (*domain.ImportResult, error) {
	startedAt := s.now()

	runID, err := utils.NewRunID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id da importação")
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"file":   path,
	})
	logger.Info("Iniciando importação da planilha")

	workbook, err := ReadWorkbook(path)
	if err != nil {
		logger.WithError(err).Error("Erro ao abrir a planilha")
		return nil, errors.WithStack(err)
	}
	defer workbook.Close()

	batch, err := Transform(workbook)
	if err != nil {
		logger.WithError(err).Error("Erro ao converter a planilha")
		return nil, errors.WithStack(err)
	}

	logger.WithFields(logrus.Fields{
		"sales_pipeline": len(batch.SalesPipeline),
		"employability":  len(batch.Employability),
		"quality":        len(batch.Quality),
		"delivery":       len(batch.Delivery),
	}).Debug("Planilha convertida, gravando no banco")

	if err := s.importRepository.ReplaceAll(ctx, batch); err != nil {
		logger.WithError(err).Error("Erro ao gravar os dados importados")
		return nil, errors.WithStack(NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error()))
	}

	result := batch.Result()
	result.RunID = runID
	result.File = path
	result.StartedAt = startedAt
	result.Duration = s.now().Sub(startedAt)

	logger.WithFields(logrus.Fields{
		"sales_pipeline": result.SalesPipeline,
		"employability":  result.Employability,
		"quality":        result.Quality,
		"delivery":       result.Delivery,
		"duration_ms":    result.Duration.Milliseconds(),
	}).Info("Importação concluída com sucesso")

	return &result, nil
}
