package handler

import (
	"net/http"

	"github.com/vfg2006/pms-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/reporting"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Dashboard(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/summary",
			Method:  http.MethodGet,
			Handler: DashboardSummary(service),
		},
	}
}

func SalesPipeline(reports reporting.ReportService, records recording.RecordService[domain.SalesPipelineEntry]) []router.Route {
	return domainRoutes("/api/sales-pipeline", "sales", SalesPipelineReport(reports), records)
}

func Employability(reports reporting.ReportService, records recording.RecordService[domain.EmployabilityEntry]) []router.Route {
	return domainRoutes("/api/employability", "employability", EmployabilityReport(reports), records)
}

func Quality(reports reporting.ReportService, records recording.RecordService[domain.QualityEntry]) []router.Route {
	return domainRoutes("/api/quality", "quality", QualityReport(reports), records)
}

func Delivery(reports reporting.ReportService, records recording.RecordService[domain.DeliveryEntry]) []router.Route {
	return domainRoutes("/api/delivery", "delivery", DeliveryReport(reports), records)
}

// domainRoutes monta o relatório e o cadastro de um domínio sob o mesmo prefixo
func domainRoutes[E any](prefix string, label string, report http.Handler, records recording.RecordService[E]) []router.Route {
	return []router.Route{
		{
			Path:    prefix,
			Method:  http.MethodGet,
			Handler: report,
		},
		{
			Path:    prefix + "/all",
			Method:  http.MethodGet,
			Handler: ListRecords(records, label),
		},
		{
			Path:    prefix + "/add",
			Method:  http.MethodPost,
			Handler: CreateRecord(records, label),
		},
		{
			Path:    prefix + "/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRecord(records),
		},
	}
}

func ImportJobs(syncer ImportSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/import/run",
			Method:  http.MethodPost,
			Handler: RunImport(syncer),
		},
		{
			Path:    "/api/import/status",
			Method:  http.MethodGet,
			Handler: GetImportStatus(syncer),
		},
	}
}
