package importing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
)

// Erros específicos da importação da planilha
var (
	ErrWorkbookNotFound  = errors.New("workbook not found")
	ErrSheetRead         = errors.New("error reading sheet")
	ErrInvalidRow        = errors.New("invalid row")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrImportInProgress  = errors.New("import already in progress")
)

// ImportError é um erro com o contexto da linha que falhou
type ImportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Sheet   string // Aba da planilha (quando aplicável)
	Row     int    // Linha da planilha, começando em 1 no cabeçalho
	Details string // Detalhes adicionais
}

func (e *ImportError) Error() string {
	msg := e.Err.Error()
	if e.Sheet != "" {
		msg = fmt.Sprintf("%s: aba %q, linha %d", msg, e.Sheet, e.Row)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewRowError(sheet string, row int, details string) *ImportError {
	return &ImportError{
		Err:     ErrInvalidRow,
		Code:    apiErrors.ErrInvalidSheetData,
		Sheet:   sheet,
		Row:     row,
		Details: details,
	}
}
