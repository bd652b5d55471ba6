package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

func expectClearAll(mock sqlmock.Sqlmock) {
	for _, table := range []string{"sales_pipeline", "employability", "quality", "delivery"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table)).WillReturnResult(sqlmock.NewResult(0, 5))
	}
}

func TestImportRepository_ReplaceAll(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewImportRepository(conn)

	batch := &domain.ImportBatch{
		SalesPipeline: []*domain.SalesPipelineEntry{
			domain.SalesPipelineInput{EnquiryDate: datePtr(2025, time.January, 2)}.Entry(),
			domain.SalesPipelineInput{EnquiryDate: datePtr(2025, time.January, 3)}.Entry(),
		},
		Delivery: []*domain.DeliveryEntry{
			domain.DeliveryInput{OrderDate: datePtr(2025, time.January, 4)}.Entry(),
		},
	}

	mock.ExpectBegin()
	expectClearAll(mock)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales_pipeline")).
		WithArgs("2025-01-02", nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales_pipeline")).
		WithArgs("2025-01-03", nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO delivery")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, int64(1), batch.SalesPipeline[0].ID)
	assert.Equal(t, int64(2), batch.SalesPipeline[1].ID)
}

func TestImportRepository_ReplaceAll_RollsBackOnInsertFailure(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewImportRepository(conn)

	batch := &domain.ImportBatch{
		Quality: []*domain.QualityEntry{
			domain.QualityInput{Date: datePtr(2025, time.January, 2)}.Entry(),
		},
	}

	mock.ExpectBegin()
	expectClearAll(mock)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quality")).
		WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), batch)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao inserir quality (registro 1)")
}

func TestImportRepository_ReplaceAll_RollsBackOnClearFailure(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewImportRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales_pipeline")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employability")).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), &domain.ImportBatch{})

	assert.ErrorContains(t, err, "erro ao limpar a tabela employability")
}

func TestImportRepository_InsertIfEmpty(t *testing.T) {
	batch := &domain.ImportBatch{
		Employability: []*domain.EmployabilityEntry{
			domain.EmployabilityInput{Date: datePtr(2025, time.January, 23)}.Entry(),
		},
	}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected bool
	}{
		{
			name: "tabela vazia recebe o lote",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sales_pipeline")).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employability")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
				mock.ExpectCommit()
			},
			expected: true,
		},
		{
			name: "tabela com dados não é alterada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sales_pipeline")).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
				mock.ExpectCommit()
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			inserted, err := NewImportRepository(conn).InsertIfEmpty(context.Background(), batch)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, inserted)
		})
	}
}

func TestImportRepository_InsertIfEmpty_CountFailure(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sales_pipeline")).
		WillReturnError(errors.New("relation \"sales_pipeline\" does not exist"))
	mock.ExpectRollback()

	inserted, err := NewImportRepository(conn).InsertIfEmpty(context.Background(), &domain.ImportBatch{})

	assert.False(t, inserted)
	assert.Error(t, err)
}
