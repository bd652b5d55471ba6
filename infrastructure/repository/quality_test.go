package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

func TestQualityRepository_List(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewQualityRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM quality ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(recordColumns(qualityColumns)).
			AddRow(int64(4), time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), int64(1000), int64(12), "Dimension", int64(980),
				int64(5), int64(3), "450.50", int64(2), "120.00", time.Now()))

	entries, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1000, entries[0].ProductProduced)
	assert.Equal(t, "Dimension", *entries[0].ReasonForRejection)
	assert.True(t, decimal.RequireFromString("450.50").Equal(entries[0].CostOfRemake))
}

func TestQualityRepository_Summary(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewQualityRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("NULLIF(product_produced, 0)")).
		WithArgs("2025-02-01", "2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"rejection_rate", "return_rate", "total_quality_cost"}).
			AddRow(0.0, 0.0, 0.0))

	summary, err := repo.Summary(context.Background(), previousMonth)

	require.NoError(t, err)
	assert.Equal(t, &domain.QualitySummary{}, summary)
}

func TestQualityRepository_QualityTrends_OnlyMonthsWithProduction(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewQualityRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE date IS NOT NULL AND product_produced > 0")).
		WillReturnRows(sqlmock.NewRows([]string{"month", "rejection_rate", "return_rate", "quality_costs"}).
			AddRow("Feb-25", 1.2, 0.5, 570.5))

	trends, err := repo.QualityTrends(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.QualityTrend{
		{Month: "Feb-25", RejectionRate: 1.2, ReturnRate: 0.5, QualityCosts: 570.5},
	}, trends)
}

func TestQualityRepository_RejectionReasons(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewQualityRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY reason_for_rejection ORDER BY count DESC, reason ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"reason", "count"}).AddRow("Dimension", int64(2)))

	reasons, err := repo.RejectionReasons(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.ReasonCount{{Reason: "Dimension", Count: 2}}, reasons)
}

func TestQualityRepository_CostBreakdown(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewQualityRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE product_returned > 0)")).
		WithArgs("2025-02-01", "2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"repair_costs", "remake_costs", "return_incidents"}).
			AddRow(120.0, 450.5, int64(3)))

	breakdown, err := repo.CostBreakdown(context.Background(), previousMonth)

	require.NoError(t, err)
	assert.Equal(t, &domain.QualityCostBreakdown{RepairCosts: 120, RemakeCosts: 450.5, ReturnIncidents: 3}, breakdown)
}
