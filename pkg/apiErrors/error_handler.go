package apiErrors

import (
	"fmt"
	"net/http"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos ao cliente
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados

	// Erros de importação
	ErrImportFailed     = "IMP_001" // Falha na importação da planilha
	ErrInvalidSheetData = "IMP_002" // Linha da planilha com dado inválido
)

// APIError representa o corpo padronizado das respostas de erro
type APIError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

var debug atomic.Bool

// SetDebug habilita details e stack no corpo das respostas (APP_ENV=development)
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

func IsDebug() bool {
	return debug.Load()
}

// WriteError escreve o erro padronizado. Todo erro da API responde 500.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Message: message,
		Code:    code,
	}

	if debug.Load() {
		apiErr.Details = details
	}

	write(w, apiErr)
}

// WriteErrorFromErr inclui o texto do erro e, quando disponível, a stack de pkg/errors
func WriteErrorFromErr(w http.ResponseWriter, err error, code string, message string) {
	write(w, FromError(err, code, message))
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string, message string) APIError {
	if err == nil {
		return APIError{
			Message: "Erro desconhecido",
			Code:    ErrInternalServer,
		}
	}

	apiErr := APIError{
		Message: message,
		Code:    code,
	}

	if debug.Load() {
		apiErr.Details = err.Error()
		apiErr.Stack = fmt.Sprintf("%+v", err)
	}

	return apiErr
}

func write(w http.ResponseWriter, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(apiErr)
}
