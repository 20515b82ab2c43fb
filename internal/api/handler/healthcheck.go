package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/internal/config"
)

type HealthConfigStatus struct {
	HasClientID       bool   `json:"hasClientId"`
	HasClientSecret   bool   `json:"hasClientSecret"`
	HasDeveloperToken bool   `json:"hasDeveloperToken"`
	BackendURL        string `json:"backendUrl"`
	FrontendURL       string `json:"frontendUrl"`
}

type HealthResponse struct {
	Status    string             `json:"status"`
	Timestamp string             `json:"timestamp"`
	Config    HealthConfigStatus `json:"config"`
}

// HealthcheckHandler responde liveness e a presença das credenciais, sem
// nunca expor os valores
func HealthcheckHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Config: HealthConfigStatus{
				HasClientID:       cfg.Google.ClientID != "",
				HasClientSecret:   cfg.Google.HasClientSecret(),
				HasDeveloperToken: cfg.Google.HasDeveloperToken(),
				BackendURL:        cfg.App.BackendURL,
				FrontendURL:       cfg.App.FrontendURL,
			},
		})
		if err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
