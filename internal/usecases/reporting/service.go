package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

type ReportService interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	SalesPipeline(ctx context.Context) (*domain.SalesPipelineReport, error)
	Employability(ctx context.Context) (*domain.EmployabilityReport, error)
	Quality(ctx context.Context) (*domain.QualityReport, error)
	Delivery(ctx context.Context) (*domain.DeliveryReport, error)
}

type Service struct {
	salesPipelineRepository repository.SalesPipelineRepository
	employabilityRepository repository.EmployabilityRepository
	qualityRepository       repository.QualityRepository
	deliveryRepository      repository.DeliveryRepository
	now                     func() time.Time
}

func NewService(
	salesPipelineRepository repository.SalesPipelineRepository,
	employabilityRepository repository.EmployabilityRepository,
	qualityRepository repository.QualityRepository,
	deliveryRepository repository.DeliveryRepository,
) ReportService {
	return &Service{
		salesPipelineRepository: salesPipelineRepository,
		employabilityRepository: employabilityRepository,
		qualityRepository:       qualityRepository,
		deliveryRepository:      deliveryRepository,
		now:                     time.Now,
	}
}

var round = utils.RoundWithTwoDecimalPlace

func queryFailed(report string, err error) error {
	logrus.WithError(err).WithField("report", report).Error("Erro ao consultar relatório")
	return errors.WithStack(NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, report, err.Error()))
}

func (s *Service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	now := s.now()
	currentYear := domain.CurrentYear(now)
	previousMonth := domain.PreviousMonth(now)

	sales, err := s.salesPipelineRepository.Summary(ctx, currentYear)
	if err != nil {
		return nil, queryFailed("sales_pipeline.summary", err)
	}

	employability, err := s.employabilityRepository.Summary(ctx, previousMonth)
	if err != nil {
		return nil, queryFailed("employability.summary", err)
	}

	quality, err := s.qualityRepository.Summary(ctx, previousMonth)
	if err != nil {
		return nil, queryFailed("quality.summary", err)
	}

	delivery, err := s.deliveryRepository.Summary(ctx, previousMonth)
	if err != nil {
		return nil, queryFailed("delivery.summary", err)
	}

	return &domain.DashboardSummary{
		SalesPipeline: domain.SalesSummary{
			YTDSales:       round(sales.YTDSales),
			AvgSalesCycle:  round(sales.AvgSalesCycle),
			ConversionRate: round(sales.ConversionRate),
			AvgOrderValue:  round(sales.AvgOrderValue),
		},
		Employability: domain.EmployabilitySummary{
			RetentionRate:      round(employability.RetentionRate),
			AvgRecruitmentDays: round(employability.AvgRecruitmentDays),
		},
		Quality: domain.QualitySummary{
			RejectionRate:    round(quality.RejectionRate),
			ReturnRate:       round(quality.ReturnRate),
			TotalQualityCost: round(quality.TotalQualityCost),
		},
		Delivery: domain.DeliverySummary{
			OnTimeDelivery:    round(delivery.OnTimeDelivery),
			AvgLeadTime:       round(delivery.AvgLeadTime),
			DelayedOrders:     delivery.DelayedOrders,
			DelayedOrderValue: round(delivery.DelayedOrderValue),
		},
	}, nil
}

func (s *Service) SalesPipeline(ctx context.Context) (*domain.SalesPipelineReport, error) {
	trends, err := s.salesPipelineRepository.MonthlyTrends(ctx)
	if err != nil {
		return nil, queryFailed("sales_pipeline.monthly_trends", err)
	}

	funnel, err := s.salesPipelineRepository.ConversionFunnel(ctx)
	if err != nil {
		return nil, queryFailed("sales_pipeline.conversion_funnel", err)
	}

	states, err := s.salesPipelineRepository.GeographicDistribution(ctx)
	if err != nil {
		return nil, queryFailed("sales_pipeline.geographic_distribution", err)
	}

	for i := range trends {
		trends[i].TotalSales = round(trends[i].TotalSales)
		trends[i].AvgCycle = round(trends[i].AvgCycle)
	}

	for i := range states {
		states[i].TotalValue = round(states[i].TotalValue)
	}

	return &domain.SalesPipelineReport{
		MonthlyTrends:          trends,
		ConversionFunnel:       funnel,
		GeographicDistribution: states,
	}, nil
}

func (s *Service) Employability(ctx context.Context) (*domain.EmployabilityReport, error) {
	headcount, err := s.employabilityRepository.DepartmentHeadcount(ctx)
	if err != nil {
		return nil, queryFailed("employability.department_headcount", err)
	}

	reasons, err := s.employabilityRepository.AttritionReasons(ctx)
	if err != nil {
		return nil, queryFailed("employability.attrition_reasons", err)
	}

	trends, err := s.employabilityRepository.RetentionTrends(ctx)
	if err != nil {
		return nil, queryFailed("employability.retention_trends", err)
	}

	for i := range headcount {
		headcount[i].Present = round(headcount[i].Present)
		headcount[i].Separated = round(headcount[i].Separated)
	}

	for i := range trends {
		trends[i].RetentionRate = round(trends[i].RetentionRate)
	}

	return &domain.EmployabilityReport{
		DepartmentHeadcount: headcount,
		AttritionReasons:    reasons,
		RetentionTrends:     trends,
	}, nil
}

func (s *Service) Quality(ctx context.Context) (*domain.QualityReport, error) {
	trends, err := s.qualityRepository.QualityTrends(ctx)
	if err != nil {
		return nil, queryFailed("quality.quality_trends", err)
	}

	reasons, err := s.qualityRepository.RejectionReasons(ctx)
	if err != nil {
		return nil, queryFailed("quality.rejection_reasons", err)
	}

	costs, err := s.qualityRepository.CostBreakdown(ctx, domain.PreviousMonth(s.now()))
	if err != nil {
		return nil, queryFailed("quality.cost_breakdown", err)
	}

	for i := range trends {
		trends[i].RejectionRate = round(trends[i].RejectionRate)
		trends[i].ReturnRate = round(trends[i].ReturnRate)
		trends[i].QualityCosts = round(trends[i].QualityCosts)
	}

	return &domain.QualityReport{
		QualityTrends:    trends,
		RejectionReasons: reasons,
		CostBreakdown: domain.QualityCostBreakdown{
			RepairCosts:     round(costs.RepairCosts),
			RemakeCosts:     round(costs.RemakeCosts),
			ReturnIncidents: costs.ReturnIncidents,
		},
	}, nil
}

func (s *Service) Delivery(ctx context.Context) (*domain.DeliveryReport, error) {
	trends, err := s.deliveryRepository.DeliveryTrends(ctx)
	if err != nil {
		return nil, queryFailed("delivery.delivery_trends", err)
	}

	reasons, err := s.deliveryRepository.DelayReasons(ctx)
	if err != nil {
		return nil, queryFailed("delivery.delay_reasons", err)
	}

	buckets, err := s.deliveryRepository.LeadTimeDistribution(ctx)
	if err != nil {
		return nil, queryFailed("delivery.lead_time_distribution", err)
	}

	for i := range trends {
		trends[i].OnTimeRate = round(trends[i].OnTimeRate)
		trends[i].AvgLeadTime = round(trends[i].AvgLeadTime)
	}

	for i := range reasons {
		reasons[i].Value = round(reasons[i].Value)
	}

	return &domain.DeliveryReport{
		DeliveryTrends:       trends,
		DelayReasons:         reasons,
		LeadTimeDistribution: buckets,
	}, nil
}
