package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/authorizing"
)

// StartGoogleAuth inicia o fluxo OAuth redirecionando o navegador para a
// página de consentimento do Google
func StartGoogleAuth(service authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authURL := service.AuthorizationURL(r.URL.Query().Get("state"))

		logrus.WithField("auth_url", authURL).Debug("Redirecionando para o provedor")

		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// GoogleAuthCallback finaliza o fluxo OAuth. O resultado é sempre um
// redirect para o front end; sucesso ou falha viajam no query string
func GoogleAuthCallback(service authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		redirectURL := service.Callback(r.Context(), authorizing.CallbackParams{
			Code:          query.Get("code"),
			State:         query.Get("state"),
			ProviderError: query.Get("error"),
		})

		http.Redirect(w, r, redirectURL, http.StatusFound)
	}
}
