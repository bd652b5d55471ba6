package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

var salesPipelineColumns = []string{
	"enquiry_date", "lead", "lead_qualified_date", "sales_order", "sales_order_date",
	"sales_cycle", "invoice_date", "invoice_value", "city", "state",
}

var (
	salesSummaryQuery = psql.Select(
		"COALESCE(SUM(invoice_value), 0)::float8 AS ytd_sales",
		"COALESCE(AVG(sales_cycle), 0)::float8 AS avg_sales_cycle",
		"COALESCE(AVG(CASE WHEN sales_order = 'Won' THEN 1 ELSE 0 END) * 100, 0)::float8 AS conversion_rate",
		"COALESCE(AVG(invoice_value), 0)::float8 AS avg_order_value",
	).
		From(salesPipelineTable)

	salesMonthlyTrendsQuery = psql.Select(
		monthLabel("invoice_date"),
		"COALESCE(SUM(invoice_value), 0)::float8 AS total_sales",
		"COALESCE(AVG(sales_cycle), 0)::float8 AS avg_cycle",
		"COUNT(*) AS total_orders",
	).
		From(salesPipelineTable).
		Where("invoice_date IS NOT NULL").
		GroupBy(monthBucket("invoice_date")).
		OrderBy(trendOrder("invoice_date")).
		Limit(trendMonths)

	// Cada etapa do funil é contada sobre a tabela inteira, sem filtro encadeado
	salesFunnelQuery = psql.Select(
		"COUNT(*) AS enquiries",
		"COUNT(*) FILTER (WHERE lead = 'Yes') AS leads",
		"COUNT(*) FILTER (WHERE lead_qualified_date IS NOT NULL) AS opportunities",
		"COUNT(*) FILTER (WHERE sales_order = 'Won') AS won",
	).
		From(salesPipelineTable)

	salesGeographicQuery = psql.Select(
		"state",
		"COALESCE(SUM(invoice_value), 0)::float8 AS total_value",
		"COUNT(*) AS orders",
	).
		From(salesPipelineTable).
		Where("invoice_value IS NOT NULL").
		GroupBy("state").
		OrderBy("total_value DESC", "state ASC")
)

type SalesPipelineRepository interface {
	Create(ctx context.Context, entry *domain.SalesPipelineEntry) (*domain.SalesPipelineEntry, error)
	List(ctx context.Context) ([]*domain.SalesPipelineEntry, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, period domain.Period) (*domain.SalesSummary, error)
	MonthlyTrends(ctx context.Context) ([]domain.SalesMonthlyTrend, error)
	ConversionFunnel(ctx context.Context) ([]domain.FunnelStage, error)
	GeographicDistribution(ctx context.Context) ([]domain.StateSales, error)
}

type salesPipelineRepository struct {
	conn *postgres.Connection
}

func NewSalesPipelineRepository(conn *postgres.Connection) SalesPipelineRepository {
	return &salesPipelineRepository{
		conn: conn,
	}
}

func (r *salesPipelineRepository) Create(ctx context.Context, entry *domain.SalesPipelineEntry) (*domain.SalesPipelineEntry, error) {
	if err := insertSalesPipeline(ctx, r.conn, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func insertSalesPipeline(ctx context.Context, q postgres.Queryer, entry *domain.SalesPipelineEntry) error {
	query, args, err := psql.
		Insert(salesPipelineTable).
		Columns(salesPipelineColumns...).
		Values(
			entry.EnquiryDate,
			entry.Lead,
			entry.LeadQualifiedDate,
			entry.SalesOrder,
			entry.SalesOrderDate,
			entry.SalesCycle,
			entry.InvoiceDate,
			entry.InvoiceValue,
			entry.City,
			entry.State,
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

func (r *salesPipelineRepository) List(ctx context.Context) ([]*domain.SalesPipelineEntry, error) {
	query, args, err := psql.
		Select(recordColumns(salesPipelineColumns)...).
		From(salesPipelineTable).
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

	entries := make([]*domain.SalesPipelineEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, scanError(salesPipelineTable, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *salesPipelineRepository) scanEntry(rows *sql.Rows) (*domain.SalesPipelineEntry, error) {
	entry := &domain.SalesPipelineEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.EnquiryDate,
		&entry.Lead,
		&entry.LeadQualifiedDate,
		&entry.SalesOrder,
		&entry.SalesOrderDate,
		&entry.SalesCycle,
		&entry.InvoiceDate,
		&entry.InvoiceValue,
		&entry.City,
		&entry.State,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *salesPipelineRepository) Delete(ctx context.Context, id int64) error {
	return deleteRecord(ctx, r.conn, salesPipelineTable, id)
}

func (r *salesPipelineRepository) Summary(ctx context.Context, period domain.Period) (*domain.SalesSummary, error) {
	query, args, err := salesSummaryQuery.Where(withinPeriod("invoice_date", period)).ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	summary := &domain.SalesSummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.YTDSales,
		&summary.AvgSalesCycle,
		&summary.ConversionRate,
		&summary.AvgOrderValue,
	)
	if err != nil {
		return nil, execError(err)
	}

	return summary, nil
}

func (r *salesPipelineRepository) MonthlyTrends(ctx context.Context) ([]domain.SalesMonthlyTrend, error) {
	query, args, err := salesMonthlyTrendsQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	trends := make([]domain.SalesMonthlyTrend, 0)
	for rows.Next() {
		var trend domain.SalesMonthlyTrend
		if err := rows.Scan(&trend.Month, &trend.TotalSales, &trend.AvgCycle, &trend.TotalOrders); err != nil {
			return nil, scanError("tendência de vendas", err)
		}
		trends = append(trends, trend)
	}

	return trends, rows.Err()
}

func (r *salesPipelineRepository) ConversionFunnel(ctx context.Context) ([]domain.FunnelStage, error) {
	query, args, err := salesFunnelQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	var enquiries, leads, opportunities, won int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&enquiries, &leads, &opportunities, &won); err != nil {
		return nil, execError(err)
	}

	return []domain.FunnelStage{
		{Stage: domain.FunnelEnquiries, Count: enquiries},
		{Stage: domain.FunnelLeads, Count: leads},
		{Stage: domain.FunnelOpportunities, Count: opportunities},
		{Stage: domain.FunnelWon, Count: won},
	}, nil
}

func (r *salesPipelineRepository) GeographicDistribution(ctx context.Context) ([]domain.StateSales, error) {
	query, args, err := salesGeographicQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	states := make([]domain.StateSales, 0)
	for rows.Next() {
		var state domain.StateSales
		if err := rows.Scan(&state.State, &state.TotalValue, &state.Orders); err != nil {
			return nil, scanError("distribuição geográfica", err)
		}
		states = append(states, state)
	}

	return states, rows.Err()
}
