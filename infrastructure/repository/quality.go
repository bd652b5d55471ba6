package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

var qualityColumns = []string{
	"date", "product_produced", "product_rejected", "reason_for_rejection", "product_shipped",
	"product_returned", "product_remake", "cost_of_remake", "product_repaired", "cost_of_repair",
}

const (
	rejectionRate = "COALESCE(AVG(product_rejected::float8 / NULLIF(product_produced, 0) * 100), 0)::float8 AS rejection_rate"
	returnRate    = "COALESCE(AVG(product_returned::float8 / NULLIF(product_shipped, 0) * 100), 0)::float8 AS return_rate"
)

var (
	qualitySummaryQuery = psql.Select(
		rejectionRate,
		returnRate,
		"COALESCE(SUM(cost_of_repair + cost_of_remake), 0)::float8 AS total_quality_cost",
	).
		From(qualityTable)

	// Meses sem produção não aparecem na tendência
	qualityTrendsQuery = psql.Select(
		monthLabel("date"),
		rejectionRate,
		returnRate,
		"COALESCE(SUM(cost_of_repair + cost_of_remake), 0)::float8 AS quality_costs",
	).
		From(qualityTable).
		Where("date IS NOT NULL").
		Where("product_produced > 0").
		GroupBy(monthBucket("date")).
		OrderBy(trendOrder("date")).
		Limit(trendMonths)

	qualityRejectionReasonsQuery = psql.Select("reason_for_rejection AS reason", "COUNT(*) AS count").
		From(qualityTable).
		Where("reason_for_rejection IS NOT NULL").
		GroupBy("reason_for_rejection").
		OrderBy("count DESC", "reason ASC")

	qualityCostBreakdownQuery = psql.Select(
		"COALESCE(SUM(cost_of_repair), 0)::float8 AS repair_costs",
		"COALESCE(SUM(cost_of_remake), 0)::float8 AS remake_costs",
		"COUNT(*) FILTER (WHERE product_returned > 0) AS return_incidents",
	).
		From(qualityTable)
)

type QualityRepository interface {
	Create(ctx context.Context, entry *domain.QualityEntry) (*domain.QualityEntry, error)
	List(ctx context.Context) ([]*domain.QualityEntry, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, period domain.Period) (*domain.QualitySummary, error)
	QualityTrends(ctx context.Context) ([]domain.QualityTrend, error)
	RejectionReasons(ctx context.Context) ([]domain.ReasonCount, error)
	CostBreakdown(ctx context.Context, period domain.Period) (*domain.QualityCostBreakdown, error)
}

type qualityRepository struct {
	conn *postgres.Connection
}

func NewQualityRepository(conn *postgres.Connection) QualityRepository {
	return &qualityRepository{
		conn: conn,
	}
}

func (r *qualityRepository) Create(ctx context.Context, entry *domain.QualityEntry) (*domain.QualityEntry, error) {
	if err := insertQuality(ctx, r.conn, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func insertQuality(ctx context.Context, q postgres.Queryer, entry *domain.QualityEntry) error {
	query, args, err := psql.
		Insert(qualityTable).
		Columns(qualityColumns...).
		Values(
			entry.Date,
			entry.ProductProduced,
			entry.ProductRejected,
			entry.ReasonForRejection,
			entry.ProductShipped,
			entry.ProductReturned,
			entry.ProductRemake,
			entry.CostOfRemake,
			entry.ProductRepaired,
			entry.CostOfRepair,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return buildError(err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return execError(err)
	}

	return nil
}

func (r *qualityRepository) List(ctx context.Context) ([]*domain.QualityEntry, error) {
	query, args, err := psql.
		Select(recordColumns(qualityColumns)...).
		From(qualityTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	entries := make([]*domain.QualityEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, scanError(qualityTable, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *qualityRepository) scanEntry(rows *sql.Rows) (*domain.QualityEntry, error) {
	entry := &domain.QualityEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.Date,
		&entry.ProductProduced,
		&entry.ProductRejected,
		&entry.ReasonForRejection,
		&entry.ProductShipped,
		&entry.ProductReturned,
		&entry.ProductRemake,
		&entry.CostOfRemake,
		&entry.ProductRepaired,
		&entry.CostOfRepair,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *qualityRepository) Delete(ctx context.Context, id int64) error {
	return deleteRecord(ctx, r.conn, qualityTable, id)
}

func (r *qualityRepository) Summary(ctx context.Context, period domain.Period) (*domain.QualitySummary, error) {
	query, args, err := qualitySummaryQuery.Where(withinPeriod("date", period)).ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	summary := &domain.QualitySummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.RejectionRate,
		&summary.ReturnRate,
		&summary.TotalQualityCost,
	)
	if err != nil {
		return nil, execError(err)
	}

	return summary, nil
}

func (r *qualityRepository) QualityTrends(ctx context.Context) ([]domain.QualityTrend, error) {
	query, args, err := qualityTrendsQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	trends := make([]domain.QualityTrend, 0)
	for rows.Next() {
		var trend domain.QualityTrend
		if err := rows.Scan(&trend.Month, &trend.RejectionRate, &trend.ReturnRate, &trend.QualityCosts); err != nil {
			return nil, scanError("tendência de qualidade", err)
		}
		trends = append(trends, trend)
	}

	return trends, rows.Err()
}

func (r *qualityRepository) RejectionReasons(ctx context.Context) ([]domain.ReasonCount, error) {
	query, args, err := qualityRejectionReasonsQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	return queryReasonCounts(ctx, r.conn, query, args)
}

func (r *qualityRepository) CostBreakdown(ctx context.Context, period domain.Period) (*domain.QualityCostBreakdown, error) {
	query, args, err := qualityCostBreakdownQuery.Where(withinPeriod("date", period)).ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	breakdown := &domain.QualityCostBreakdown{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&breakdown.RepairCosts,
		&breakdown.RemakeCosts,
		&breakdown.ReturnIncidents,
	)
	if err != nil {
		return nil, execError(err)
	}

	return breakdown, nil
}
