package domain

import "time"

// ImportBatch contém os registros extraídos da planilha, na ordem das linhas de origem
type ImportBatch struct {
	SalesPipeline []*SalesPipelineEntry
	Employability []*EmployabilityEntry
	Quality       []*QualityEntry
	Delivery      []*DeliveryEntry
}

// ImportResult resume uma execução de importação
type ImportResult struct {
	RunID         string        `json:"run_id"`
	File          string        `json:"file"`
	SalesPipeline int           `json:"sales_pipeline"`
	Employability int           `json:"employability"`
	Quality       int           `json:"quality"`
	Delivery      int           `json:"delivery"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
}

func (b *ImportBatch) Result() ImportResult {
	return ImportResult{
		SalesPipeline: len(b.SalesPipeline),
		Employability: len(b.Employability),
		Quality:       len(b.Quality),
		Delivery:      len(b.Delivery),
	}
}
