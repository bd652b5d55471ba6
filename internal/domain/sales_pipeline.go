package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesPipelineEntry representa uma linha da tabela sales_pipeline
type SalesPipelineEntry struct {
	ID                int64               `json:"id"`
	EnquiryDate       *Date               `json:"enquiry_date"`
	Lead              *string             `json:"lead"`
	LeadQualifiedDate *Date               `json:"lead_qualified_date"`
	SalesOrder        *string             `json:"sales_order"`
	SalesOrderDate    *Date               `json:"sales_order_date"`
	SalesCycle        *int                `json:"sales_cycle"`
	InvoiceDate       *Date               `json:"invoice_date"`
	InvoiceValue      decimal.NullDecimal `json:"invoice_value"`
	City              *string             `json:"city"`
	State             *string             `json:"state"`
	CreatedAt         time.Time           `json:"created_at"`
}

// SalesPipelineInput lista os campos reconhecidos no corpo da requisição (mapstructure)
// e na aba "Sales Pipeline-Database" da planilha (xlsx)
type SalesPipelineInput struct {
	EnquiryDate       *Date            `mapstructure:"enquiry_date" xlsx:"Equiry Date"`
	Lead              *string          `mapstructure:"lead" xlsx:"Lead"`
	LeadQualifiedDate *Date            `mapstructure:"lead_qualified_date" xlsx:"Lead Qualified Date"`
	SalesOrder        *string          `mapstructure:"sales_order" xlsx:"Sales Order"`
	SalesOrderDate    *Date            `mapstructure:"sales_order_date" xlsx:"Sales Order Date"`
	SalesCycle        *int             `mapstructure:"sales_cycle" xlsx:"Sales Cycle"`
	InvoiceDate       *Date            `mapstructure:"invoice_date" xlsx:"Invoice Date"`
	InvoiceValue      *decimal.Decimal `mapstructure:"invoice_value" xlsx:"Invoice Value"`
	City              *string          `mapstructure:"city" xlsx:"City"`
	State             *string          `mapstructure:"state" xlsx:"State"`
}

func (in SalesPipelineInput) GoverningDate() *Date {
	return in.EnquiryDate
}

// Entry mantém todos os campos ausentes como nulos
func (in SalesPipelineInput) Entry() *SalesPipelineEntry {
	return &SalesPipelineEntry{
		EnquiryDate:       in.EnquiryDate,
		Lead:              in.Lead,
		LeadQualifiedDate: in.LeadQualifiedDate,
		SalesOrder:        in.SalesOrder,
		SalesOrderDate:    in.SalesOrderDate,
		SalesCycle:        in.SalesCycle,
		InvoiceDate:       in.InvoiceDate,
		InvoiceValue:      nullDecimal(in.InvoiceValue),
		City:              in.City,
		State:             in.State,
	}
}
