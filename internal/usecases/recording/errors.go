package recording

import (
	"errors"
	"fmt"
)

// Erros específicos do cadastro manual de registros
var (
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrInvalidID         = errors.New("invalid record id")
	ErrDatabaseOperation = errors.New("database operation error")
)

// RecordError é um erro com a tabela envolvida
type RecordError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Table   string // Tabela do domínio
	Details string // Detalhes adicionais
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Err.Error(), e.Table)
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(err error, code string, table string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Table:   table,
		Details: details,
	}
}
