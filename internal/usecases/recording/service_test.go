package recording

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var createdAt = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestDeliveryService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepository(ctrl)
	service := NewDeliveryService(mockRepo)

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *domain.DeliveryEntry) (*domain.DeliveryEntry, error) {
			entry.ID = 42
			entry.CreatedAt = createdAt
			return entry, nil
		})

	entry, err := service.Create(context.Background(), map[string]any{
		"order_date":  "2025-03-01",
		"order_value": 12000.0,
		"delayed":     "",
		"lead_time":   nil,
		"unknown":     "ignorado",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), entry.ID)
	assert.Equal(t, "2025-03-01", entry.OrderDate.String())
	assert.True(t, decimal.NewFromInt(12000).Equal(entry.OrderValue))
	assert.Equal(t, 0, entry.Delayed)
	require.NotNil(t, entry.LeadTime)
	assert.Equal(t, 0, *entry.LeadTime)
	assert.True(t, entry.DelayedOrderValue.IsZero())
	assert.Nil(t, entry.EstimatedShipDate)
	assert.Nil(t, entry.ReasonForDelay)
	assert.Equal(t, createdAt, entry.CreatedAt)
}

func TestSalesPipelineService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesPipelineRepository(ctrl)
	service := NewSalesPipelineService(mockRepo)

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *domain.SalesPipelineEntry) (*domain.SalesPipelineEntry, error) {
			entry.ID = 7
			return entry, nil
		})

	entry, err := service.Create(context.Background(), map[string]any{
		"enquiry_date":  "2025-02-14T00:00:00Z",
		"lead":          "Yes",
		"sales_cycle":   12.0,
		"invoice_value": "1500.50",
		"city":          "  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-02-14", entry.EnquiryDate.String())
	assert.Equal(t, "Yes", *entry.Lead)
	assert.Equal(t, 12, *entry.SalesCycle)
	assert.True(t, entry.InvoiceValue.Valid)
	assert.Equal(t, "1500.5", entry.InvoiceValue.Decimal.String())
	assert.Nil(t, entry.City)
	assert.Nil(t, entry.InvoiceDate)
}

func TestQualityService_Create_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockQualityRepository(ctrl)
	service := NewQualityService(mockRepo)

	entry, err := service.Create(context.Background(), map[string]any{
		"date":             "10/03/2025",
		"product_produced": 100,
	})

	assert.Nil(t, entry)
	require.ErrorIs(t, err, ErrInvalidPayload)

	var recordErr *RecordError
	require.ErrorAs(t, err, &recordErr)
	assert.Equal(t, "quality", recordErr.Table)
	assert.Equal(t, apiErrors.ErrInvalidRequest, recordErr.Code)
}

func TestEmployabilityService_Create_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmployabilityRepository(ctrl)
	service := NewEmployabilityService(mockRepo)

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *domain.EmployabilityEntry) (*domain.EmployabilityEntry, error) {
			assert.Equal(t, 18, entry.AdminPresent)
			assert.Equal(t, 0, entry.DLPresent)
			assert.Nil(t, entry.TotalDaysToRecruit)
			return nil, errors.New("null value in column \"date\"")
		})

	entry, err := service.Create(context.Background(), map[string]any{
		"admin_present": 18,
	})

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockQualityRepository(ctrl)
	service := NewQualityService(mockRepo)

	expected := []*domain.QualityEntry{{ID: 2}, {ID: 1}}
	mockRepo.EXPECT().List(gomock.Any()).Return(expected, nil)

	entries, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepository(ctrl)
	service := NewDeliveryService(mockRepo)

	mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	entries, err := service.List(context.Background())

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		setup       func(repo *mocks.MockSalesPipelineRepository)
		expectedErr error
	}{
		{
			name: "remove pelo id",
			id:   "15",
			setup: func(repo *mocks.MockSalesPipelineRepository) {
				repo.EXPECT().Delete(gomock.Any(), int64(15)).Return(nil)
			},
		},
		{
			name: "id já removido responde igual",
			id:   "15",
			setup: func(repo *mocks.MockSalesPipelineRepository) {
				repo.EXPECT().Delete(gomock.Any(), int64(15)).Return(nil).Times(1)
			},
		},
		{
			name:        "id não numérico",
			id:          "abc",
			setup:       func(repo *mocks.MockSalesPipelineRepository) {},
			expectedErr: ErrInvalidID,
		},
		{
			name: "falha no banco",
			id:   "3",
			setup: func(repo *mocks.MockSalesPipelineRepository) {
				repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("conexão perdida"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockSalesPipelineRepository(ctrl)
			tt.setup(mockRepo)

			err := NewSalesPipelineService(mockRepo).Delete(context.Background(), tt.id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPresentFields(t *testing.T) {
	fields := presentFields(map[string]any{
		"lead":        "Yes",
		"city":        "",
		"state":       "   ",
		"sales_cycle": nil,
		"delayed":     0.0,
	})

	assert.Equal(t, map[string]any{
		"lead":    "Yes",
		"delayed": 0.0,
	}, fields)
}
