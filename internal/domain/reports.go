package domain

// Faixas fixas do histograma de lead time
const (
	LeadTimeUpTo30 = "≤30 days"
	LeadTime31To60 = "31-60 days"
	LeadTime61To90 = "61-90 days"
	LeadTimeOver90 = ">90 days"
)

// Etapas do funil de conversão, contadas de forma independente
const (
	FunnelEnquiries     = "Enquiries"
	FunnelLeads         = "Leads"
	FunnelOpportunities = "Opportunities"
	FunnelWon           = "Won"
)

// DashboardSummary reúne os KPIs principais de cada domínio
type DashboardSummary struct {
	SalesPipeline SalesSummary         `json:"sales_pipeline"`
	Employability EmployabilitySummary `json:"employability"`
	Quality       QualitySummary       `json:"quality"`
	Delivery      DeliverySummary      `json:"delivery"`
}

// SalesSummary considera as faturas do ano corrente
type SalesSummary struct {
	YTDSales       float64 `json:"ytd_sales"`
	AvgSalesCycle  float64 `json:"avg_sales_cycle"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}

// EmployabilitySummary considera o mês anterior
type EmployabilitySummary struct {
	RetentionRate      float64 `json:"retention_rate"`
	AvgRecruitmentDays float64 `json:"avg_recruitment_days"`
}

// QualitySummary considera o mês anterior
type QualitySummary struct {
	RejectionRate    float64 `json:"rejection_rate"`
	ReturnRate       float64 `json:"return_rate"`
	TotalQualityCost float64 `json:"total_quality_cost"`
}

// DeliverySummary considera o mês anterior
type DeliverySummary struct {
	OnTimeDelivery    float64 `json:"on_time_delivery"`
	AvgLeadTime       float64 `json:"avg_lead_time"`
	DelayedOrders     int64   `json:"delayed_orders"`
	DelayedOrderValue float64 `json:"delayed_order_value"`
}

type SalesPipelineReport struct {
	MonthlyTrends          []SalesMonthlyTrend `json:"monthly_trends"`
	ConversionFunnel       []FunnelStage       `json:"conversion_funnel"`
	GeographicDistribution []StateSales        `json:"geographic_distribution"`
}

type SalesMonthlyTrend struct {
	Month       string  `json:"month"` // Formato Mon-YY (ex: Jan-25)
	TotalSales  float64 `json:"total_sales"`
	AvgCycle    float64 `json:"avg_cycle"`
	TotalOrders int64   `json:"total_orders"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

type StateSales struct {
	State      *string `json:"state"`
	TotalValue float64 `json:"total_value"`
	Orders     int64   `json:"orders"`
}

type EmployabilityReport struct {
	DepartmentHeadcount []DepartmentHeadcount `json:"department_headcount"`
	AttritionReasons    []ReasonCount         `json:"attrition_reasons"`
	RetentionTrends     []RetentionTrend      `json:"retention_trends"`
}

type DepartmentHeadcount struct {
	Department string  `json:"department"`
	Present    float64 `json:"present"`
	Separated  float64 `json:"separated"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int64  `json:"count"`
}

type RetentionTrend struct {
	Month         string  `json:"month"`
	RetentionRate float64 `json:"retention_rate"`
}

type QualityReport struct {
	QualityTrends    []QualityTrend       `json:"quality_trends"`
	RejectionReasons []ReasonCount        `json:"rejection_reasons"`
	CostBreakdown    QualityCostBreakdown `json:"cost_breakdown"`
}

type QualityTrend struct {
	Month         string  `json:"month"`
	RejectionRate float64 `json:"rejection_rate"`
	ReturnRate    float64 `json:"return_rate"`
	QualityCosts  float64 `json:"quality_costs"`
}

// QualityCostBreakdown considera o mês anterior
type QualityCostBreakdown struct {
	RepairCosts     float64 `json:"repair_costs"`
	RemakeCosts     float64 `json:"remake_costs"`
	ReturnIncidents int64   `json:"return_incidents"`
}

type DeliveryReport struct {
	DeliveryTrends       []DeliveryTrend  `json:"delivery_trends"`
	DelayReasons         []DelayReason    `json:"delay_reasons"`
	LeadTimeDistribution []LeadTimeBucket `json:"lead_time_distribution"`
}

type DeliveryTrend struct {
	Month         string  `json:"month"`
	OnTimeRate    float64 `json:"on_time_rate"`
	AvgLeadTime   float64 `json:"avg_lead_time"`
	DelayedOrders int64   `json:"delayed_orders"`
}

type DelayReason struct {
	Reason string  `json:"reason"`
	Count  int64   `json:"count"`
	Value  float64 `json:"value"`
}

type LeadTimeBucket struct {
	Bucket string `json:"lead_time_bucket"`
	Count  int64  `json:"count"`
}
