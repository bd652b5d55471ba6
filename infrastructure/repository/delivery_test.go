package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

func TestDeliveryRepository_Create_DelayedOmitted(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDeliveryRepository(conn)

	entry := domain.DeliveryInput{
		OrderDate: datePtr(2025, time.February, 14),
		LeadTime:  ptr(45),
	}.Entry()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO delivery (order_date,order_value,estimated_ship_date,actual_ship_date,lead_time,delayed,delayed_order_value,reason_for_delay)")).
		WithArgs("2025-02-14", "0", nil, nil, int64(45), int64(0), "0", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

	created, err := repo.Create(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, 0, created.Delayed)
}

func TestDeliveryRepository_Summary(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDeliveryRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM delivery WHERE")).
		WithArgs("2025-02-01", "2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"on_time_delivery", "avg_lead_time", "delayed_orders", "delayed_order_value"}).
			AddRow(75.0, 32.5, int64(1), 2500.0))

	summary, err := repo.Summary(context.Background(), previousMonth)

	require.NoError(t, err)
	assert.Equal(t, &domain.DeliverySummary{
		OnTimeDelivery:    75,
		AvgLeadTime:       32.5,
		DelayedOrders:     1,
		DelayedOrderValue: 2500,
	}, summary)
}

func TestDeliveryRepository_DeliveryTrends(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDeliveryRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY DATE_TRUNC('month', order_date) ORDER BY DATE_TRUNC('month', order_date) DESC LIMIT 12")).
		WillReturnRows(sqlmock.NewRows([]string{"month", "on_time_rate", "avg_lead_time", "delayed_orders"}).
			AddRow("Feb-25", 50.0, 40.0, int64(1)))

	trends, err := repo.DeliveryTrends(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.DeliveryTrend{{Month: "Feb-25", OnTimeRate: 50, AvgLeadTime: 40, DelayedOrders: 1}}, trends)
}

func TestDeliveryRepository_DelayReasons(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDeliveryRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE reason_for_delay IS NOT NULL GROUP BY reason_for_delay")).
		WillReturnRows(sqlmock.NewRows([]string{"reason", "count", "value"}).
			AddRow("Material Shortage", int64(2), 5000.0))

	reasons, err := repo.DelayReasons(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.DelayReason{{Reason: "Material Shortage", Count: 2, Value: 5000}}, reasons)
}

func TestDeliveryRepository_LeadTimeDistribution(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDeliveryRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("WHEN COALESCE(lead_time, 0) <= 30 THEN '≤30 days'")).
		WillReturnRows(sqlmock.NewRows([]string{"lead_time_bucket", "count"}).
			AddRow("31-60 days", int64(3)).
			AddRow("≤30 days", int64(1)))

	buckets, err := repo.LeadTimeDistribution(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.LeadTimeBucket{
		{Bucket: domain.LeadTime31To60, Count: 3},
		{Bucket: domain.LeadTimeUpTo30, Count: 1},
	}, buckets)
}

func TestLeadTimeBucketExpression(t *testing.T) {
	assert.Contains(t, leadTimeBucket, "WHEN lead_time <= 60 THEN '31-60 days'")
	assert.Contains(t, leadTimeBucket, "WHEN lead_time <= 90 THEN '61-90 days'")
	assert.Contains(t, leadTimeBucket, "ELSE '>90 days' END")
}
