package googleclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
	"golang.org/x/oauth2"
)

// Exchange troca o authorization code por tokens no endpoint de token do
// Google. A chamada é feita uma única vez: o code é de uso único, então
// repetir a requisição com o mesmo code falharia de qualquer forma
func (c *GoogleClient) Exchange(ctx context.Context, code string) (*domain.TokenSet, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			logrus.WithFields(logrus.Fields{
				"status": retrieveErr.Response.StatusCode,
			}).Error("Troca de token recusada pelo provedor")

			return nil, &domain.TokenExchangeError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       string(retrieveErr.Body),
			}
		}

		return nil, errors.Wrap(err, "erro ao trocar authorization code por tokens")
	}

	logrus.WithFields(logrus.Fields{
		"has_refresh_token": token.RefreshToken != "",
		"expires_in":        token.ExpiresIn,
	}).Info("Tokens recebidos do provedor")

	return &domain.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
	}, nil
}
