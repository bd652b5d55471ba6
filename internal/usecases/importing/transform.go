package importing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/pms-dashboard-api/internal/domain"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/utils"
)

// Abas da planilha operacional
const (
	SheetSalesPipeline = "Sales Pipeline-Database"
	SheetEmployability = "Employability-Database"
	SheetQuality       = "Quality-Database"
	SheetDelivery      = "Delivery-Database"
)

// Transform converte as quatro abas em registros, na ordem fixa de processamento.
// A primeira linha inválida interrompe a importação inteira.
func Transform(wb *Workbook) (*domain.ImportBatch, error) {
	var (
		batch = &domain.ImportBatch{}
		err   error
	)

	if batch.SalesPipeline, err = transformSheet[domain.SalesPipelineInput, domain.SalesPipelineEntry](wb, SheetSalesPipeline); err != nil {
		return nil, err
	}

	if batch.Employability, err = transformSheet[domain.EmployabilityInput, domain.EmployabilityEntry](wb, SheetEmployability); err != nil {
		return nil, err
	}

	if batch.Quality, err = transformSheet[domain.QualityInput, domain.QualityEntry](wb, SheetQuality); err != nil {
		return nil, err
	}

	if batch.Delivery, err = transformSheet[domain.DeliveryInput, domain.DeliveryEntry](wb, SheetDelivery); err != nil {
		return nil, err
	}

	return batch, nil
}

// transformSheet ignora linhas sem a data que governa o domínio
func transformSheet[I domain.Input[E], E any](wb *Workbook, sheet string) ([]*E, error) {
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, NewImportError(ErrSheetRead, apiErrors.ErrImportFailed, err.Error())
	}

	dateColumns := domain.DateFields(domain.TagSheet, new(I))

	entries := make([]*E, 0, len(rows))
	for _, row := range rows {
		var input I

		dropZeroSerials(row.Cells, dateColumns)

		decoder, err := domain.NewDecoder(domain.TagSheet, &input, ParseSerialDate)
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(row.Cells); err != nil {
			return nil, NewRowError(sheet, row.Number, err.Error())
		}

		if input.GoverningDate() == nil {
			continue
		}

		entries = append(entries, input.Entry())
	}

	return entries, nil
}

// dropZeroSerials trata o serial 0 como data ausente: a linha sem data governante
// é ignorada e a data opcional fica nula
func dropZeroSerials(cells map[string]string, dateColumns []string) {
	for _, column := range dateColumns {
		value, ok := cells[column]
		if !ok {
			continue
		}

		if serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && serial == 0 {
			delete(cells, column)
		}
	}
}

// ParseSerialDate aceita apenas o número serial da planilha; texto interrompe a importação
func ParseSerialDate(value string) (domain.Date, error) {
	value = strings.TrimSpace(value)

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return domain.Date{}, fmt.Errorf("data não numérica %q", value)
	}

	return domain.DateOf(utils.FromSerial(serial)), nil
}
