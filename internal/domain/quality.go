package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QualityEntry representa uma linha da tabela quality
type QualityEntry struct {
	ID                 int64           `json:"id"`
	Date               *Date           `json:"date"`
	ProductProduced    int             `json:"product_produced"`
	ProductRejected    int             `json:"product_rejected"`
	ReasonForRejection *string         `json:"reason_for_rejection"`
	ProductShipped     int             `json:"product_shipped"`
	ProductReturned    int             `json:"product_returned"`
	ProductRemake      int             `json:"product_remake"`
	CostOfRemake       decimal.Decimal `json:"cost_of_remake"`
	ProductRepaired    int             `json:"product_repaired"`
	CostOfRepair       decimal.Decimal `json:"cost_of_repair"`
	CreatedAt          time.Time       `json:"created_at"`
}

type QualityInput struct {
	Date               *Date            `mapstructure:"date" xlsx:"Date"`
	ProductProduced    *int             `mapstructure:"product_produced" xlsx:"Product Produced"`
	ProductRejected    *int             `mapstructure:"product_rejected" xlsx:"Product Rejected"`
	ReasonForRejection *string          `mapstructure:"reason_for_rejection" xlsx:"Reason for Rejction"`
	ProductShipped     *int             `mapstructure:"product_shipped" xlsx:"Product Shipped"`
	ProductReturned    *int             `mapstructure:"product_returned" xlsx:"Product Returned"`
	ProductRemake      *int             `mapstructure:"product_remake" xlsx:"Product Remake"`
	CostOfRemake       *decimal.Decimal `mapstructure:"cost_of_remake" xlsx:"Cost of Remake"`
	ProductRepaired    *int             `mapstructure:"product_repaired" xlsx:"Product Repaired"`
	CostOfRepair       *decimal.Decimal `mapstructure:"cost_of_repair" xlsx:"Cost of Repair"`
}

func (in QualityInput) GoverningDate() *Date {
	return in.Date
}

func (in QualityInput) Entry() *QualityEntry {
	return &QualityEntry{
		Date:               in.Date,
		ProductProduced:    intOrZero(in.ProductProduced),
		ProductRejected:    intOrZero(in.ProductRejected),
		ReasonForRejection: in.ReasonForRejection,
		ProductShipped:     intOrZero(in.ProductShipped),
		ProductReturned:    intOrZero(in.ProductReturned),
		ProductRemake:      intOrZero(in.ProductRemake),
		CostOfRemake:       decimalOrZero(in.CostOfRemake),
		ProductRepaired:    intOrZero(in.ProductRepaired),
		CostOfRepair:       decimalOrZero(in.CostOfRepair),
	}
}
