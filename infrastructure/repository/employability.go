package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

var employabilityColumns = []string{
	"date",
	"admin_present", "admin_leave", "admin_separated", "admin_reason_attrition",
	"dl_present", "dl_leave", "dl_separated", "dl_reason_attrition",
	"idl_present", "idl_leave", "idl_separated", "idl_reason_attrition",
	"total_days_to_recruit",
	"hr_ir_count", "finance_account_count", "sales_marketing_count", "operations_count", "it_count",
}

// Linhas com presentes + desligados igual a zero ficam fora da média
const retentionRate = "COALESCE(AVG(" +
	"(admin_present + dl_present + idl_present)::float8 / " +
	"NULLIF(admin_present + dl_present + idl_present + admin_separated + dl_separated + idl_separated, 0) * 100" +
	"), 0)::float8 AS retention_rate"

var (
	employabilitySummaryQuery = psql.Select(
		retentionRate,
		"COALESCE(AVG(total_days_to_recruit), 0)::float8 AS avg_recruitment_days",
	).
		From(employabilityTable)

	employabilityHeadcountQuery = psql.Select(
		"COALESCE(AVG(admin_present), 0)::float8",
		"COALESCE(AVG(admin_separated), 0)::float8",
		"COALESCE(AVG(dl_present), 0)::float8",
		"COALESCE(AVG(dl_separated), 0)::float8",
		"COALESCE(AVG(idl_present), 0)::float8",
		"COALESCE(AVG(idl_separated), 0)::float8",
	).
		From(employabilityTable)

	// Os motivos das três colunas são somados em uma única contagem por motivo
	employabilityAttritionQuery = psql.Select("reason", "COUNT(*) AS count").
		From("(" +
			"SELECT admin_reason_attrition AS reason FROM employability " +
			"UNION ALL SELECT dl_reason_attrition FROM employability " +
			"UNION ALL SELECT idl_reason_attrition FROM employability" +
			") AS reasons").
		Where("reason IS NOT NULL").
		GroupBy("reason").
		OrderBy("count DESC", "reason ASC")

	employabilityRetentionTrendsQuery = psql.Select(
		monthLabel("date"),
		retentionRate,
	).
		From(employabilityTable).
		Where("date IS NOT NULL").
		GroupBy(monthBucket("date")).
		OrderBy(trendOrder("date")).
		Limit(trendMonths)
)

// Grupos de departamento do relatório de headcount
const (
	DepartmentAdmin = "Admin"
	DepartmentDL    = "DL"
	DepartmentIDL   = "IDL"
)

type EmployabilityRepository interface {
	Create(ctx context.Context, entry *domain.EmployabilityEntry) (*domain.EmployabilityEntry, error)
	List(ctx context.Context) ([]*domain.EmployabilityEntry, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, period domain.Period) (*domain.EmployabilitySummary, error)
	DepartmentHeadcount(ctx context.Context) ([]domain.DepartmentHeadcount, error)
	AttritionReasons(ctx context.Context) ([]domain.ReasonCount, error)
	RetentionTrends(ctx context.Context) ([]domain.RetentionTrend, error)
}

type employabilityRepository struct {
	conn *postgres.Connection
}

func NewEmployabilityRepository(conn *postgres.Connection) EmployabilityRepository {
	return &employabilityRepository{
		conn: conn,
	}
}

func (r *employabilityRepository) Create(ctx context.Context, entry *domain.EmployabilityEntry) (*domain.EmployabilityEntry, error) {
	if err := insertEmployability(ctx, r.conn, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func insertEmployability(ctx context.Context, q postgres.Queryer, entry *domain.EmployabilityEntry) error {
	query, args, err := psql.
		Insert(employabilityTable).
		Columns(employabilityColumns...).
		Values(
			entry.Date,
			entry.AdminPresent,
			entry.AdminLeave,
			entry.AdminSeparated,
			entry.AdminReasonAttrition,
			entry.DLPresent,
			entry.DLLeave,
			entry.DLSeparated,
			entry.DLReasonAttrition,
			entry.IDLPresent,
			entry.IDLLeave,
			entry.IDLSeparated,
			entry.IDLReasonAttrition,
			entry.TotalDaysToRecruit,
			entry.HRIRCount,
			entry.FinanceAccountCount,
			entry.SalesMarketingCount,
			entry.OperationsCount,
			entry.ITCount,
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

func (r *employabilityRepository) List(ctx context.Context) ([]*domain.EmployabilityEntry, error) {
	query, args, err := psql.
		Select(recordColumns(employabilityColumns)...).
		From(employabilityTable).
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

	entries := make([]*domain.EmployabilityEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, scanError(employabilityTable, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *employabilityRepository) scanEntry(rows *sql.Rows) (*domain.EmployabilityEntry, error) {
	entry := &domain.EmployabilityEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.Date,
		&entry.AdminPresent,
		&entry.AdminLeave,
		&entry.AdminSeparated,
		&entry.AdminReasonAttrition,
		&entry.DLPresent,
		&entry.DLLeave,
		&entry.DLSeparated,
		&entry.DLReasonAttrition,
		&entry.IDLPresent,
		&entry.IDLLeave,
		&entry.IDLSeparated,
		&entry.IDLReasonAttrition,
		&entry.TotalDaysToRecruit,
		&entry.HRIRCount,
		&entry.FinanceAccountCount,
		&entry.SalesMarketingCount,
		&entry.OperationsCount,
		&entry.ITCount,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *employabilityRepository) Delete(ctx context.Context, id int64) error {
	return deleteRecord(ctx, r.conn, employabilityTable, id)
}

func (r *employabilityRepository) Summary(ctx context.Context, period domain.Period) (*domain.EmployabilitySummary, error) {
	query, args, err := employabilitySummaryQuery.Where(withinPeriod("date", period)).ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	summary := &domain.EmployabilitySummary{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&summary.RetentionRate, &summary.AvgRecruitmentDays); err != nil {
		return nil, execError(err)
	}

	return summary, nil
}

func (r *employabilityRepository) DepartmentHeadcount(ctx context.Context) ([]domain.DepartmentHeadcount, error) {
	query, args, err := employabilityHeadcountQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	admin := domain.DepartmentHeadcount{Department: DepartmentAdmin}
	dl := domain.DepartmentHeadcount{Department: DepartmentDL}
	idl := domain.DepartmentHeadcount{Department: DepartmentIDL}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&admin.Present, &admin.Separated,
		&dl.Present, &dl.Separated,
		&idl.Present, &idl.Separated,
	)
	if err != nil {
		return nil, execError(err)
	}

	return []domain.DepartmentHeadcount{admin, dl, idl}, nil
}

func (r *employabilityRepository) AttritionReasons(ctx context.Context) ([]domain.ReasonCount, error) {
	query, args, err := employabilityAttritionQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	return queryReasonCounts(ctx, r.conn, query, args)
}

func (r *employabilityRepository) RetentionTrends(ctx context.Context) ([]domain.RetentionTrend, error) {
	query, args, err := employabilityRetentionTrendsQuery.ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	trends := make([]domain.RetentionTrend, 0)
	for rows.Next() {
		var trend domain.RetentionTrend
		if err := rows.Scan(&trend.Month, &trend.RetentionRate); err != nil {
			return nil, scanError("tendência de retenção", err)
		}
		trends = append(trends, trend)
	}

	return trends, rows.Err()
}
