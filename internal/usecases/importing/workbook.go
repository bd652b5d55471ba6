package importing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
)

// Row é uma linha de dados da aba, indexada pelo cabeçalho da coluna
type Row struct {
	Number int               // Número da linha na planilha (o cabeçalho é a linha 1)
	Cells  map[string]string // Células não vazias
}

type Workbook struct {
	path string
	file *excelize.File
}

// ReadWorkbook abre a planilha; arquivo ausente ou ilegível resulta em ErrWorkbookNotFound
func ReadWorkbook(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewImportError(ErrWorkbookNotFound, apiErrors.ErrImportFailed, fmt.Sprintf("%s: %v", path, err))
	}

	return &Workbook{path: path, file: file}, nil
}

func (w *Workbook) Path() string {
	return w.path
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// Rows devolve as linhas de dados da aba. Aba inexistente resulta em zero linhas.
// Os valores são lidos crus, então datas chegam como número serial.
func (w *Workbook) Rows(sheet string) ([]Row, error) {
	if !slices.Contains(w.file.GetSheetList(), sheet) {
		return nil, nil
	}

	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	headers := uniqueHeaders(rows[0])
	result := make([]Row, 0, len(rows)-1)

	for i, cells := range rows[1:] {
		row := Row{
			Number: i + 2,
			Cells:  make(map[string]string, len(cells)),
		}

		for j, cell := range cells {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			row.Cells[headers[j]] = cell
		}

		result = append(result, row)
	}

	return result, nil
}

// uniqueHeaders acrescenta __1, __2, ... aos cabeçalhos repetidos, na ordem em que aparecem
func uniqueHeaders(header []string) []string {
	seen := make(map[string]int, len(header))
	result := make([]string, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		count := seen[name]
		seen[name] = count + 1

		if count > 0 {
			name = fmt.Sprintf("%s__%d", name, count)
		}
		result[i] = name
	}

	return result
}
