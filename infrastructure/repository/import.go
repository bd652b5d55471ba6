package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pms-dashboard-api/internal/domain"
)

type ImportRepository interface {
	// ReplaceAll substitui o conteúdo das quatro tabelas em uma única transação
	ReplaceAll(ctx context.Context, batch *domain.ImportBatch) error
	// InsertIfEmpty grava o lote apenas quando sales_pipeline está vazia
	InsertIfEmpty(ctx context.Context, batch *domain.ImportBatch) (bool, error)
}

type importRepository struct {
	conn postgres.Conn
}

func NewImportRepository(conn postgres.Conn) ImportRepository {
	return &importRepository{
		conn: conn,
	}
}

func (r *importRepository) ReplaceAll(ctx context.Context, batch *domain.ImportBatch) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range importTables {
			if err := clearTable(ctx, tx, table); err != nil {
				return err
			}
		}

		return insertBatch(ctx, tx, batch)
	})
}

func (r *importRepository) InsertIfEmpty(ctx context.Context, batch *domain.ImportBatch) (bool, error) {
	inserted := false

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Select("COUNT(*)").From(salesPipelineTable).ToSql()
		if err != nil {
			return buildError(err)
		}

		var count int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return execError(err)
		}

		if count > 0 {
			return nil
		}

		if err := insertBatch(ctx, tx, batch); err != nil {
			return err
		}

		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return inserted, nil
}

// insertBatch grava os registros na ordem de origem
func insertBatch(ctx context.Context, q postgres.Queryer, batch *domain.ImportBatch) error {
	for i, entry := range batch.SalesPipeline {
		if err := insertSalesPipeline(ctx, q, entry); err != nil {
			return fmt.Errorf("erro ao inserir %s (registro %d): %w", salesPipelineTable, i+1, err)
		}
	}

	for i, entry := range batch.Employability {
		if err := insertEmployability(ctx, q, entry); err != nil {
			return fmt.Errorf("erro ao inserir %s (registro %d): %w", employabilityTable, i+1, err)
		}
	}

	for i, entry := range batch.Quality {
		if err := insertQuality(ctx, q, entry); err != nil {
			return fmt.Errorf("erro ao inserir %s (registro %d): %w", qualityTable, i+1, err)
		}
	}

	for i, entry := range batch.Delivery {
		if err := insertDelivery(ctx, q, entry); err != nil {
			return fmt.Errorf("erro ao inserir %s (registro %d): %w", deliveryTable, i+1, err)
		}
	}

	return nil
}
