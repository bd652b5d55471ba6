package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/log"
)

type deleteResponse struct {
	Message string `json:"message"`
}

// ListRecords devolve todos os registros do domínio, mais recentes primeiro
func ListRecords[E any](service recording.RecordService[E], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, fmt.Sprintf("Failed to fetch %s data", label))
			return
		}

		writeJSON(w, r, entries)
	}
}

// CreateRecord recebe um objeto JSON plano com as colunas do domínio
func CreateRecord[E any](service recording.RecordService[E], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message := fmt.Sprintf("Failed to add %s data", label)

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteErrorFromErr(w, errors.WithStack(err), apiErrors.ErrInvalidFormat, message)
			return
		}

		entry, err := service.Create(r.Context(), body)
		if err != nil {
			writeServiceError(w, r, err, message)
			return
		}

		writeJSON(w, r, entry)
	}
}

// DeleteRecord responde com sucesso mesmo quando o id não existe
func DeleteRecord[E any](service recording.RecordService[E]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Failed to delete record")
			return
		}

		writeJSON(w, r, deleteResponse{Message: "Record deleted successfully"})
	}
}
