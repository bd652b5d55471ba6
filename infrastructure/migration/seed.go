package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

// Registros de exemplo no mesmo formato aceito pelos endpoints de cadastro
var (
	sampleSalesPipeline = []map[string]any{
		{"enquiry_date": "2025-01-27", "lead": "Yes", "lead_qualified_date": "2025-03-13", "sales_order": "Won", "sales_order_date": "2025-05-12", "sales_cycle": 105, "invoice_date": "2025-06-11", "invoice_value": 500000, "city": "Ahmedabad", "state": "GJ"},
		{"enquiry_date": "2025-02-01", "lead": "Yes", "lead_qualified_date": "2025-03-18", "sales_order": "Won", "sales_order_date": "2025-05-15", "sales_cycle": 120, "invoice_date": "2025-07-01", "invoice_value": 750000, "city": "Mumbai", "state": "MH"},
		{"enquiry_date": "2025-02-05", "lead": "Yes", "lead_qualified_date": "2025-03-22", "sales_order": "Won", "sales_order_date": "2025-06-01", "sales_cycle": 135, "invoice_date": "2025-08-01", "invoice_value": 1500000, "city": "Delhi", "state": "DL"},
	}

	sampleEmployability = []map[string]any{
		{
			"date":          "2025-01-23",
			"admin_present": 10, "admin_leave": 1, "admin_separated": 1, "admin_reason_attrition": "Better Opportunity",
			"dl_present": 10, "dl_leave": 1, "dl_separated": 1, "dl_reason_attrition": "Better Opportunity",
			"idl_present": 10, "idl_leave": 1, "idl_separated": 1, "idl_reason_attrition": "Better Opportunity",
			"total_days_to_recruit": 60,
			"hr_ir_count":           2, "finance_account_count": 2, "sales_marketing_count": 4, "operations_count": 8, "it_count": 1,
		},
		{
			"date":          "2025-01-24",
			"admin_present": 11, "admin_leave": 0, "admin_separated": 0,
			"dl_present": 11, "dl_leave": 0, "dl_separated": 0,
			"idl_present": 11, "idl_leave": 0, "idl_separated": 0,
			"hr_ir_count": 2, "finance_account_count": 2, "sales_marketing_count": 4, "operations_count": 8, "it_count": 1,
		},
	}

	sampleQuality = []map[string]any{
		{"date": "2025-01-23", "product_produced": 1200, "product_rejected": 20, "reason_for_rejection": "Specification", "product_shipped": 1500, "product_returned": 2, "product_remake": 1, "cost_of_remake": 100000, "product_repaired": 3, "cost_of_repair": 75000},
		{"date": "2025-01-24", "product_produced": 1000, "product_rejected": 22, "product_shipped": 950, "product_returned": 1, "product_remake": 0, "cost_of_remake": 0, "product_repaired": 2, "cost_of_repair": 25000},
	}

	sampleDelivery = []map[string]any{
		{"order_date": "2025-01-23", "order_value": 500000, "estimated_ship_date": "2025-02-23", "actual_ship_date": "2025-02-23", "lead_time": 31, "delayed": 0, "delayed_order_value": 0},
		{"order_date": "2025-01-24", "order_value": 650000, "estimated_ship_date": "2025-02-28", "actual_ship_date": "2025-03-01", "lead_time": 35, "delayed": 1, "delayed_order_value": 650000, "reason_for_delay": "No RM"},
	}
)

// SampleBatch monta o lote de exemplo aplicando as mesmas regras de valor padrão da importação
func SampleBatch() (*domain.ImportBatch, error) {
	var (
		batch = &domain.ImportBatch{}
		err   error
	)

	if batch.SalesPipeline, err = decodeSamples[domain.SalesPipelineInput, domain.SalesPipelineEntry](sampleSalesPipeline); err != nil {
		return nil, err
	}
	if batch.Employability, err = decodeSamples[domain.EmployabilityInput, domain.EmployabilityEntry](sampleEmployability); err != nil {
		return nil, err
	}
	if batch.Quality, err = decodeSamples[domain.QualityInput, domain.QualityEntry](sampleQuality); err != nil {
		return nil, err
	}
	if batch.Delivery, err = decodeSamples[domain.DeliveryInput, domain.DeliveryEntry](sampleDelivery); err != nil {
		return nil, err
	}

	return batch, nil
}

func decodeSamples[I domain.Input[E], E any](rows []map[string]any) ([]*E, error) {
	entries := make([]*E, 0, len(rows))
	for i, row := range rows {
		var input I

		decoder, err := domain.NewDecoder(domain.TagBody, &input, domain.ParseDate)
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(row); err != nil {
			return nil, fmt.Errorf("erro no registro de exemplo %d: %w", i+1, err)
		}

		entries = append(entries, input.Entry())
	}

	return entries, nil
}

// Seed grava os dados de exemplo quando sales_pipeline ainda está vazia
func Seed(ctx context.Context, repo repository.ImportRepository) (bool, error) {
	batch, err := SampleBatch()
	if err != nil {
		return false, err
	}

	inserted, err := repo.InsertIfEmpty(ctx, batch)
	if err != nil {
		return false, fmt.Errorf("erro ao gravar dados de exemplo: %w", err)
	}

	if !inserted {
		logrus.Info("Banco já possui dados, exemplos não foram gravados")
		return false, nil
	}

	result := batch.Result()
	logrus.WithFields(logrus.Fields{
		"sales_pipeline": result.SalesPipeline,
		"employability":  result.Employability,
		"quality":        result.Quality,
		"delivery":       result.Delivery,
	}).Info("Dados de exemplo gravados")

	return true, nil
}
