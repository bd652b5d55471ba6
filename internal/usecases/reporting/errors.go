package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos dos relatórios
var (
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError é um erro com o relatório que falhou
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Report  string // Relatório consultado
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Err.Error(), e.Report)
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, report string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Report:  report,
		Details: details,
	}
}
