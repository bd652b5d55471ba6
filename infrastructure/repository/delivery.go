package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

var deliveryColumns = []string{
	"order_date", "order_value", "estimated_ship_date", "actual_ship_date", "lead_time",
	"delayed", "delayed_order_value", "reason_for_delay",
}

const (
	onTimeRate    = "COALESCE(AVG(CASE WHEN delayed = 0 THEN 1 ELSE 0 END) * 100, 0)::float8"
	avgLeadTime   = "COALESCE(AVG(lead_time), 0)::float8"
	delayedOrders = "COALESCE(SUM(CASE WHEN delayed = 1 THEN 1 ELSE 0 END), 0)"
)

// lead_time nulo (registros legados) cai na primeira faixa
var leadTimeBucket = fmt.Sprintf(
	"CASE WHEN COALESCE(lead_time, 0) <= 30 THEN '%s' "+
		"WHEN lead_time <= 60 THEN '%s' "+
		"WHEN lead_time <= 90 THEN '%s' "+
		"ELSE '%s' END",
	domain.LeadTimeUpTo30, domain.LeadTime31To60, domain.LeadTime61To90, domain.LeadTimeOver90,
)

var (
	deliverySummaryQuery = psql.Select(
		onTimeRate+" AS on_time_delivery",
		avgLeadTime+" AS avg_lead_time",
		delayedOrders+" AS delayed_orders",
		"COALESCE(SUM(delayed_order_value), 0)::float8 AS delayed_order_value",
	).
		From(deliveryTable)

	deliveryTrendsQuery = psql.Select(
		monthLabel("order_date"),
		onTimeRate+" AS on_time_rate",
		avgLeadTime+" AS avg_lead_time",
		delayedOrders+" AS delayed_orders",
	).
		From(deliveryTable).
		Where("order_date IS NOT NULL").
		GroupBy(monthBucket("order_date")).
		OrderBy(trendOrder("order_date")).
		Limit(trendMonths)

	deliveryDelayReasonsQuery = psql.Select(
		"reason_for_delay AS reason",
		"COUNT(*) AS count",
		"COALESCE(SUM(delayed_order_value), 0)::float8 AS value",
	).
		From(deliveryTable).
		Where("reason_for_delay IS NOT NULL").
		GroupBy("reason_for_delay").
		OrderBy("count DESC", "reason ASC")

	deliveryLeadTimeQuery = psql.Select(
		leadTimeBucket+" AS lead_time_bucket",
		"COUNT(*) AS count",
	).
		From(deliveryTable).
		GroupBy("lead_time_bucket").
		OrderBy("count DESC", "MIN(COALESCE(lead_time, 0)) ASC")
)

type DeliveryRepository interface {
	Create(ctx context.Context, entry *domain.DeliveryEntry) (*domain.DeliveryEntry, error)
	List(ctx context.Context) ([]*domain.DeliveryEntry, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, period domain.Period) (*domain.DeliverySummary, error)
	DeliveryTrends(ctx context.Context) ([]domain.DeliveryTrend, error)
	DelayReasons(ctx context.Context) ([]domain.DelayReason, error)
	LeadTimeDistribution(ctx context.Context) ([]domain.LeadTimeBucket, error)
}

type deliveryRepository struct {
	conn *postgres.Connection
}

func NewDeliveryRepository(conn *postgres.Connection) DeliveryRepository {
	return &deliveryRepository{
		conn: conn,
	}
}

func (r *deliveryRepository) Create(ctx context.Context, entry *domain.DeliveryEntry) (*domain.DeliveryEntry, error) {
	if err := insertDelivery(ctx, r.conn, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func insertDelivery(ctx context.Context, q postgres.Queryer, entry *domain.DeliveryEntry) error {
	query, args, err := psql.
		Insert(deliveryTable).
		Columns(deliveryColumns...).
		Values(
			entry.OrderDate,
			entry.OrderValue,
			entry.EstimatedShipDate,
			entry.ActualShipDate,
			entry.LeadTime,
			entry.Delayed,
			entry.DelayedOrderValue,
			entry.ReasonForDelay,
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

func (r *deliveryRepository) List(ctx context.Context) ([]*domain.DeliveryEntry, error) {
	query, args, err := psql.
		Select(recordColumns(deliveryColumns)...).
		From(deliveryTable).
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

	entries := make([]*domain.DeliveryEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, scanError(deliveryTable, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *deliveryRepository) scanEntry(rows *sql.Rows) (*domain.DeliveryEntry, error) {
	entry := &domain.DeliveryEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.OrderDate,
		&entry.OrderValue,
		&entry.EstimatedShipDate,
		&entry.ActualShipDate,
		&entry.LeadTime,
		&entry.Delayed,
		&entry.DelayedOrderValue,
		&entry.ReasonForDelay,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *deliveryRepository) Delete(ctx context.Context, id int64) error {
	return deleteRecord(ctx, r.conn, deliveryTable, id)
}

func (r *deliveryRepository) Summary(ctx context.Context, period domain.Period) (*domain.DeliverySummary, error) {
	query, args, err := deliverySummaryQuery.Where(withinPeriod("order_date", period)).ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	summary := &domain.DeliverySummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.OnTimeDelivery,
		&summary.AvgLeadTime,
		&summary.DelayedOrders,
		&summary.DelayedOrderValue,
	)
	if err != nil {
		return nil, execError(err)
	}

	return summary, nil
}

func (r *deliveryRepository) DeliveryTrends(ctx context.Context) ([]domain.DeliveryTrend, error) {
	query, args, err := deliveryTrendsQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	trends := make([]domain.DeliveryTrend, 0)
	for rows.Next() {
		var trend domain.DeliveryTrend
		if err := rows.Scan(&trend.Month, &trend.OnTimeRate, &trend.AvgLeadTime, &trend.DelayedOrders); err != nil {
			return nil, scanError("tendência de entregas", err)
		}
		trends = append(trends, trend)
	}

	return trends, rows.Err()
}

func (r *deliveryRepository) DelayReasons(ctx context.Context) ([]domain.DelayReason, error) {
	query, args, err := deliveryDelayReasonsQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	reasons := make([]domain.DelayReason, 0)
	for rows.Next() {
		var reason domain.DelayReason
		if err := rows.Scan(&reason.Reason, &reason.Count, &reason.Value); err != nil {
			return nil, scanError("motivos de atraso", err)
		}
		reasons = append(reasons, reason)
	}

	return reasons, rows.Err()
}

func (r *deliveryRepository) LeadTimeDistribution(ctx context.Context) ([]domain.LeadTimeBucket, error) {
	query, args, err := deliveryLeadTimeQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	buckets := make([]domain.LeadTimeBucket, 0)
	for rows.Next() {
		var bucket domain.LeadTimeBucket
		if err := rows.Scan(&bucket.Bucket, &bucket.Count); err != nil {
			return nil, scanError("distribuição de lead time", err)
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}
