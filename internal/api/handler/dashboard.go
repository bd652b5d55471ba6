package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/pms-dashboard-api/internal/usecases/reporting"
)

const internalServerMessage = "Internal server error"

func DashboardSummary(service reporting.ReportService) http.HandlerFunc {
	return reportHandler(service.Summary)
}

func SalesPipelineReport(service reporting.ReportService) http.HandlerFunc {
	return reportHandler(service.SalesPipeline)
}

func EmployabilityReport(service reporting.ReportService) http.HandlerFunc {
	return reportHandler(service.Employability)
}

func QualityReport(service reporting.ReportService) http.HandlerFunc {
	return reportHandler(service.Quality)
}

func DeliveryReport(service reporting.ReportService) http.HandlerFunc {
	return reportHandler(service.Delivery)
}

func reportHandler[T any](fetch func(ctx context.Context) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := fetch(r.Context())
		if err != nil {
			writeServiceError(w, r, err, internalServerMessage)
			return
		}

		writeJSON(w, r, report)
	}
}
