package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/pms-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	writeJSONStatus(w, r, http.StatusOK, body)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError registra o erro e responde 500 com o código do erro tipado, quando houver
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).
		WithError(err).
		WithField("path", r.URL.Path).
		Error(message)

	apiErrors.WriteErrorFromErr(w, err, errorCode(err), message)
}

func errorCode(err error) string {
	var (
		reportErr *reporting.ReportError
		recordErr *recording.RecordError
		importErr *importing.ImportError
	)

	switch {
	case errors.As(err, &reportErr):
		return reportErr.Code
	case errors.As(err, &recordErr):
		return recordErr.Code
	case errors.As(err, &importErr):
		return importErr.Code
	default:
		return apiErrors.ErrInternalServer
	}
}
