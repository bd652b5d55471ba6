package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryEntry representa uma linha da tabela delivery
type DeliveryEntry struct {
	ID                int64           `json:"id"`
	OrderDate         *Date           `json:"order_date"`
	OrderValue        decimal.Decimal `json:"order_value"`
	EstimatedShipDate *Date           `json:"estimated_ship_date"`
	ActualShipDate    *Date           `json:"actual_ship_date"`
	LeadTime          *int            `json:"lead_time"`
	Delayed           int             `json:"delayed"`
	DelayedOrderValue decimal.Decimal `json:"delayed_order_value"`
	ReasonForDelay    *string         `json:"reason_for_delay"`
	CreatedAt         time.Time       `json:"created_at"`
}

type DeliveryInput struct {
	OrderDate         *Date            `mapstructure:"order_date" xlsx:"Order Date"`
	OrderValue        *decimal.Decimal `mapstructure:"order_value" xlsx:"Order Value"`
	EstimatedShipDate *Date            `mapstructure:"estimated_ship_date" xlsx:"Estimated Ship Date"`
	ActualShipDate    *Date            `mapstructure:"actual_ship_date" xlsx:"Actual Ship Date"`
	LeadTime          *int             `mapstructure:"lead_time" xlsx:"Lead Time"`
	Delayed           *int             `mapstructure:"delayed" xlsx:"Delayed"`
	DelayedOrderValue *decimal.Decimal `mapstructure:"delayed_order_value" xlsx:"Delayed Order Value"`
	ReasonForDelay    *string          `mapstructure:"reason_for_delay" xlsx:"Reason for Delay"`
}

func (in DeliveryInput) GoverningDate() *Date {
	return in.OrderDate
}

// Entry grava lead_time ausente como 0, o que o coloca na faixa "≤30 days"
func (in DeliveryInput) Entry() *DeliveryEntry {
	leadTime := intOrZero(in.LeadTime)

	return &DeliveryEntry{
		OrderDate:         in.OrderDate,
		OrderValue:        decimalOrZero(in.OrderValue),
		EstimatedShipDate: in.EstimatedShipDate,
		ActualShipDate:    in.ActualShipDate,
		LeadTime:          &leadTime,
		Delayed:           intOrZero(in.Delayed),
		DelayedOrderValue: decimalOrZero(in.DelayedOrderValue),
		ReasonForDelay:    in.ReasonForDelay,
	}
}
