package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthcheckResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database,omitempty"`
	Time     time.Time `json:"time"`
}

// HealthcheckHandler responde 200 enquanto o processo estiver de pé; o banco é apenas informado
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC(),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			response.Database = "up"
			if err := db.Ping(ctx); err != nil {
				response.Database = "down"
			}
		}

		writeJSON(w, r, response)
	})
}
