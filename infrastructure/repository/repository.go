package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

//go:generate mockgen -source=sales_pipeline.go -destination=mocks/sales_pipeline.go -package=mocks
//go:generate mockgen -source=employability.go -destination=mocks/employability.go -package=mocks
//go:generate mockgen -source=quality.go -destination=mocks/quality.go -package=mocks
//go:generate mockgen -source=delivery.go -destination=mocks/delivery.go -package=mocks
//go:generate mockgen -source=import.go -destination=mocks/import.go -package=mocks

const (
	salesPipelineTable = "sales_pipeline"
	employabilityTable = "employability"
	qualityTable       = "quality"
	deliveryTable      = "delivery"
)

// Tabelas na ordem de limpeza e carga da importação
var importTables = []string{salesPipelineTable, employabilityTable, qualityTable, deliveryTable}

// psql é o builder padrão com placeholders $n do Postgres
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Expressões de mês usadas pelas consultas de tendência (últimos 12 meses, mais recente primeiro)
func monthLabel(column string) string {
	return fmt.Sprintf("TO_CHAR(DATE_TRUNC('month', %s), 'Mon-YY') AS month", column)
}

func monthBucket(column string) string {
	return fmt.Sprintf("DATE_TRUNC('month', %s)", column)
}

func trendOrder(column string) string {
	return monthBucket(column) + " DESC"
}

const trendMonths = 12

func withinPeriod(column string, period domain.Period) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{column: period.From.Format(time.DateOnly)},
		squirrel.Lt{column: period.To.Format(time.DateOnly)},
	}
}

// recordColumns devolve id, as colunas informadas e created_at, na ordem de Scan
func recordColumns(columns []string) []string {
	result := make([]string, 0, len(columns)+2)
	result = append(result, "id")
	result = append(result, columns...)
	return append(result, "created_at")
}

func buildError(err error) error {
	return fmt.Errorf("erro ao construir a query: %w", err)
}

func execError(err error) error {
	return fmt.Errorf("erro ao executar a query: %w", postgres.DescribeError(err))
}

func scanError(table string, err error) error {
	return fmt.Errorf("erro ao escanear %s: %w", table, err)
}

// deleteRecord não verifica se o registro existe; remover um id inexistente não é erro
func deleteRecord(ctx context.Context, q postgres.Queryer, table string, id int64) error {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return buildError(err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return execError(err)
	}

	return nil
}

func clearTable(ctx context.Context, q postgres.Queryer, table string) error {
	query, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return buildError(err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao limpar a tabela %s: %w", table, postgres.DescribeError(err))
	}

	return nil
}

// queryReasonCounts lê consultas no formato (reason, count)
func queryReasonCounts(ctx context.Context, q postgres.Queryer, query string, args []any) ([]domain.ReasonCount, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	reasons := make([]domain.ReasonCount, 0)
	for rows.Next() {
		var reason domain.ReasonCount
		if err := rows.Scan(&reason.Reason, &reason.Count); err != nil {
			return nil, scanError("motivos", err)
		}
		reasons = append(reasons, reason)
	}

	return reasons, rows.Err()
}
