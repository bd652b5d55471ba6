package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &postgres.Connection{DB: db}, mock
}

func TestApply(t *testing.T) {
	conn, mock := newMockConnection(t)

	for _, name := range []string{"sales_pipeline", "employability", "quality", "delivery"} {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + name + " (")).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Apply(context.Background(), conn))
}

func TestApply_StopsOnFailure(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS sales_pipeline")).
		WillReturnError(errors.New("permission denied for schema public"))

	err := Apply(context.Background(), conn)

	assert.ErrorContains(t, err, "erro ao criar a tabela sales_pipeline")
}

func TestSampleBatch(t *testing.T) {
	batch, err := SampleBatch()
	require.NoError(t, err)

	assert.Equal(t, domain.ImportResult{SalesPipeline: 3, Employability: 2, Quality: 2, Delivery: 2}, batch.Result())

	sales := batch.SalesPipeline[2]
	assert.Equal(t, "2025-02-05", sales.EnquiryDate.String())
	assert.Equal(t, 135, *sales.SalesCycle)
	assert.Equal(t, "1500000", sales.InvoiceValue.Decimal.String())

	employability := batch.Employability[1]
	assert.Nil(t, employability.AdminReasonAttrition)
	assert.Nil(t, employability.TotalDaysToRecruit)

	assert.Nil(t, batch.Quality[1].ReasonForRejection)

	delayed := batch.Delivery[1]
	assert.Equal(t, 1, delayed.Delayed)
	assert.Equal(t, 35, *delayed.LeadTime)
	assert.Equal(t, "No RM", *delayed.ReasonForDelay)
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name      string
		inserted  bool
		repoErr   error
		expected  bool
		expectErr bool
	}{
		{name: "banco vazio", inserted: true, expected: true},
		{name: "banco com dados", inserted: false, expected: false},
		{name: "falha ao gravar", repoErr: errors.New("conexão perdida"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockImportRepository(ctrl)
			mockRepo.EXPECT().InsertIfEmpty(gomock.Any(), gomock.Any()).Return(tt.inserted, tt.repoErr)

			inserted, err := Seed(context.Background(), mockRepo)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, inserted)
		})
	}
}
