package recording

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
)

// RecordService cadastra, lista e remove registros de um domínio
type RecordService[E any] interface {
	Create(ctx context.Context, body map[string]any) (*E, error)
	List(ctx context.Context) ([]*E, error)
	Delete(ctx context.Context, id string) error
}

// Store é a parte do repositório usada pelo cadastro; os quatro repositórios a satisfazem
type Store[E any] interface {
	Create(ctx context.Context, entry *E) (*E, error)
	List(ctx context.Context) ([]*E, error)
	Delete(ctx context.Context, id int64) error
}

type Service[I domain.Input[E], E any] struct {
	table string
	store Store[E]
}

func NewService[I domain.Input[E], E any](table string, store Store[E]) RecordService[E] {
	return &Service[I, E]{
		table: table,
		store: store,
	}
}

func NewSalesPipelineService(repo repository.SalesPipelineRepository) RecordService[domain.SalesPipelineEntry] {
	return NewService[domain.SalesPipelineInput, domain.SalesPipelineEntry]("sales_pipeline", repo)
}

func NewEmployabilityService(repo repository.EmployabilityRepository) RecordService[domain.EmployabilityEntry] {
	return NewService[domain.EmployabilityInput, domain.EmployabilityEntry]("employability", repo)
}

func NewQualityService(repo repository.QualityRepository) RecordService[domain.QualityEntry] {
	return NewService[domain.QualityInput, domain.QualityEntry]("quality", repo)
}

func NewDeliveryService(repo repository.DeliveryRepository) RecordService[domain.DeliveryEntry] {
	return NewService[domain.DeliveryInput, domain.DeliveryEntry]("delivery", repo)
}

// Create aplica os mesmos padrões da importação; campos em branco contam como ausentes
func (s *Service[I, E]) Create(ctx context.Context, body map[string]any) (*E, error) {
	var input I

	decoder, err := domain.NewDecoder(domain.TagBody, &input, domain.ParseDate)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := decoder.Decode(presentFields(body)); err != nil {
		return nil, errors.WithStack(NewRecordError(ErrInvalidPayload, apiErrors.ErrInvalidRequest, s.table, err.Error()))
	}

	entry, err := s.store.Create(ctx, input.Entry())
	if err != nil {
		logrus.WithError(err).WithField("table", s.table).Error("Erro ao inserir registro")
		return nil, errors.WithStack(NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, s.table, err.Error()))
	}

	return entry, nil
}

func (s *Service[I, E]) List(ctx context.Context) ([]*E, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		logrus.WithError(err).WithField("table", s.table).Error("Erro ao listar registros")
		return nil, errors.WithStack(NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, s.table, err.Error()))
	}

	return entries, nil
}

// Delete não verifica se o registro existe
func (s *Service[I, E]) Delete(ctx context.Context, id string) error {
	recordID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return errors.WithStack(NewRecordError(ErrInvalidID, apiErrors.ErrInvalidFormat, s.table, id))
	}

	if err := s.store.Delete(ctx, recordID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"table": s.table,
			"id":    recordID,
		}).Error("Erro ao remover registro")
		return errors.WithStack(NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, s.table, err.Error()))
	}

	return nil
}

func presentFields(body map[string]any) map[string]any {
	fields := make(map[string]any, len(body))
	for key, value := range body {
		if value == nil {
			continue
		}
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			continue
		}
		fields[key] = value
	}
	return fields
}
