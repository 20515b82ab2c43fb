package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HomeHandler é a página inicial da API: um índice dos endpoints para quem
// abrir a raiz no navegador
func HomeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(map[string]any{
			"name":      "AdsPilot AI Backend API",
			"version":   "1.0.0",
			"status":    "running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"endpoints": map[string]string{
				"health":       "GET /api/health",
				"authStart":    "GET /api/auth/google",
				"authCallback": "GET /api/auth/callback/google",
				"scan":         "POST /api/campaigns/scan",
			},
		})
		if err != nil {
			logrus.WithError(err).Warn("Erro ao responder a página inicial")
		}
	})
}

// NotFoundHandler responde JSON para caminhos não registrados
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)

		err := json.NewEncoder(w).Encode(map[string]string{
			"error":   "Not Found",
			"path":    r.URL.Path,
			"message": "This endpoint does not exist",
		})
		if err != nil {
			logrus.WithError(err).Warn("Erro ao responder 404")
		}
	})
}
