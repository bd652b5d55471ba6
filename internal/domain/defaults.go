package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

// Domain identifica uma das quatro áreas de negócio independentes
type Domain string

const (
	DomainSalesPipeline Domain = "sales-pipeline"
	DomainEmployability Domain = "employability"
	DomainQuality       Domain = "quality"
	DomainDelivery      Domain = "delivery"
)

// Domains na ordem fixa de processamento da importação
var Domains = []Domain{DomainSalesPipeline, DomainEmployability, DomainQuality, DomainDelivery}

// Input é implementado pelos structs de entrada de cada domínio
type Input[E any] interface {
	// GoverningDate é a data cuja presença decide se a linha é importada
	GoverningDate() *Date
	// Entry aplica as regras de valor padrão e devolve o registro a ser gravado
	Entry() *E
}

func intOrZero(v *int) int {
	return utils.IntOrZero(v)
}

func decimalOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func nullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*v)
}
