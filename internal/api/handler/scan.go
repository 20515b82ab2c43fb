package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/scanning"
	"github.com/vfg2006/ads-pilot-api/pkg/apiErrors"
)

type ScanRequest struct {
	AccessToken string `json:"access_token"`
	CustomerID  string `json:"customer_id"`
}

// ScanCampaigns busca e agrega as campanhas de uma conta. Access token
// ausente é erro do chamador (400); qualquer falha de upstream degrada para
// o dataset mock dentro do serviço
func ScanCampaigns(service scanning.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScanRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"has_access_token": req.AccessToken != "",
			"customer_id":      req.CustomerID,
		}).Info("Requisição de scan recebida")

		if req.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing access_token", nil)
			return
		}

		summary := service.Scan(r.Context(), req.AccessToken, req.CustomerID)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do scan")
		}
	}
}
