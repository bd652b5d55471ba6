package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/pms-dashboard-api/internal/scheduler"
	"github.com/vfg2006/pms-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pms-dashboard-api/pkg/log"
)

// ImportSyncer é a parte do agendador usada pelas rotas de importação
type ImportSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

var _ ImportSyncer = (*scheduler.ImportSyncService)(nil)

// RunImport dispara a reimportação da planilha em segundo plano
func RunImport(syncer ImportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de importação não disponível", nil)
			return
		}

		log.ForContext(r.Context()).Info("Importação manual solicitada")

		// A importação continua depois que a resposta é enviada
		if !syncer.TriggerManualSync(context.WithoutCancel(r.Context())) {
			writeJSON(w, r, map[string]any{
				"message": "Importação já em andamento",
				"started": false,
			})
			return
		}

		writeJSONStatus(w, r, http.StatusAccepted, map[string]any{
			"message": "Importação iniciada",
			"started": true,
		})
	}
}

// GetImportStatus retorna o estado do agendador e o resultado da última importação
func GetImportStatus(syncer ImportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de importação não disponível", nil)
			return
		}

		writeJSON(w, r, syncer.GetStatus())
	}
}
