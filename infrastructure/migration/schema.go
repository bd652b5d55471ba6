// Package migration cria as tabelas do dashboard e grava os dados de exemplo
package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pms-dashboard-api/infrastructure/database/postgres"
)

type table struct {
	name string
	ddl  string
}

var schema = []table{
	{
		name: "sales_pipeline",
		ddl: `CREATE TABLE IF NOT EXISTS sales_pipeline (
	id SERIAL PRIMARY KEY,
	enquiry_date DATE,
	lead VARCHAR(10),
	lead_qualified_date DATE,
	sales_order VARCHAR(20),
	sales_order_date DATE,
	sales_cycle INTEGER,
	invoice_date DATE,
	invoice_value DECIMAL(15,2),
	city VARCHAR(100),
	state VARCHAR(50),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	},
	{
		name: "employability",
		ddl: `CREATE TABLE IF NOT EXISTS employability (
	id SERIAL PRIMARY KEY,
	date DATE,
	admin_present INTEGER,
	admin_leave INTEGER,
	admin_separated INTEGER,
	admin_reason_attrition VARCHAR(100),
	dl_present INTEGER,
	dl_leave INTEGER,
	dl_separated INTEGER,
	dl_reason_attrition VARCHAR(100),
	idl_present INTEGER,
	idl_leave INTEGER,
	idl_separated INTEGER,
	idl_reason_attrition VARCHAR(100),
	total_days_to_recruit INTEGER,
	hr_ir_count INTEGER,
	finance_account_count INTEGER,
	sales_marketing_count INTEGER,
	operations_count INTEGER,
	it_count INTEGER,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	},
	{
		name: "quality",
		ddl: `CREATE TABLE IF NOT EXISTS quality (
	id SERIAL PRIMARY KEY,
	date DATE,
	product_produced INTEGER,
	product_rejected INTEGER,
	reason_for_rejection VARCHAR(100),
	product_shipped INTEGER,
	product_returned INTEGER,
	product_remake INTEGER,
	cost_of_remake DECIMAL(15,2),
	product_repaired INTEGER,
	cost_of_repair DECIMAL(15,2),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	},
	{
		name: "delivery",
		ddl: `CREATE TABLE IF NOT EXISTS delivery (
	id SERIAL PRIMARY KEY,
	order_date DATE,
	order_value DECIMAL(15,2),
	estimated_ship_date DATE,
	actual_ship_date DATE,
	lead_time INTEGER,
	delayed INTEGER,
	delayed_order_value DECIMAL(15,2),
	reason_for_delay VARCHAR(100),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	},
}

// Apply cria as quatro tabelas quando ainda não existem
func Apply(ctx context.Context, q postgres.Queryer) error {
	for _, t := range schema {
		if _, err := q.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("erro ao criar a tabela %s: %w", t.name, postgres.DescribeError(err))
		}

		logrus.WithField("table", t.name).Debug("Tabela verificada")
	}

	logrus.WithField("tables", len(schema)).Info("Esquema do banco aplicado")
	return nil
}
