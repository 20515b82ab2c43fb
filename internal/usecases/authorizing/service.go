package authorizing

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
)

// defaultExpiresIn é usado quando o provedor não informa a validade do token
const defaultExpiresIn = 3600

type Service struct {
	cfg    *config.Config
	client googleclient.Client
}

func NewService(cfg *config.Config, client googleclient.Client) Authorizer {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// AuthorizationURL monta a URL de consentimento do Google. Nenhum estado
// fica retido no servidor entre este passo e o callback: o parâmetro state
// é o único portador do destino de retorno
func (s *Service) AuthorizationURL(state string) string {
	if state == "" {
		state = EncodeState("/")
	}

	logrus.WithField("state", state).Info("Iniciando fluxo OAuth")

	return s.client.AuthCodeURL(state)
}

// Callback processa o retorno do provedor. O resultado é sempre uma URL de
// redirecionamento: sucesso carrega os tokens no query string, falha carrega
// um parâmetro de erro
func (s *Service) Callback(ctx context.Context, params CallbackParams) string {
	destination := DecodeState(params.State).URL(s.cfg.App.FrontendURL)

	logrus.WithFields(logrus.Fields{
		"has_code":       params.Code != "",
		"state":          params.State,
		"provider_error": params.ProviderError,
	}).Info("Callback OAuth recebido")

	// Erro reportado pelo provedor tem precedência sobre code ausente
	if params.ProviderError != "" {
		logrus.WithField("error", params.ProviderError).Error("Provedor retornou erro no callback")
		return redirectWithError(destination, params.ProviderError, nil)
	}

	if params.Code == "" {
		logrus.Error("Callback sem authorization code")
		return redirectWithError(destination, ErrCodeNoCode, nil)
	}

	tokens, err := s.client.Exchange(ctx, params.Code)
	if err != nil {
		var exchangeErr *domain.TokenExchangeError
		if errors.As(err, &exchangeErr) {
			// O code é de uso único: sem retry, a falha volta ao navegador
			// com a resposta crua do provedor para diagnóstico
			return redirectWithError(destination, ErrCodeTokenExchangeFailed, url.Values{
				"details": []string{exchangeErr.Body},
			})
		}

		logrus.WithError(err).Error("Erro inesperado no callback OAuth")
		return redirectWithError(destination, ErrCodeServerError, url.Values{
			"message": []string{err.Error()},
		})
	}

	// Enriquecimento best-effort: falha na listagem de contas nunca
	// derruba o fluxo de autorização
	accounts := s.listAccounts(ctx, tokens.AccessToken)

	return successRedirect(destination, tokens, accounts)
}

func (s *Service) listAccounts(ctx context.Context, accessToken string) []string {
	if !s.cfg.Google.HasDeveloperToken() {
		logrus.Warn("Developer token ausente - pulando listagem de contas")
		return []string{}
	}

	accounts, err := s.client.ListAccessibleCustomers(ctx, accessToken)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível listar as contas do Google Ads")
		return []string{}
	}

	if accounts == nil {
		accounts = []string{}
	}

	logrus.WithField("total_accounts", len(accounts)).Info("Contas do Google Ads encontradas")

	return accounts
}

// successRedirect serializa o conjunto de tokens e a lista de contas no
// query string do destino. Tokens em URL são um contrato herdado do front
// end e uma preocupação de segurança conhecida (ver DESIGN.md)
func successRedirect(destination string, tokens *domain.TokenSet, accounts []string) string {
	expiresIn := tokens.ExpiresIn
	if expiresIn == 0 {
		expiresIn = defaultExpiresIn
	}

	accountsJSON, err := json.Marshal(accounts)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar lista de contas")
		return redirectWithError(destination, ErrCodeServerError, url.Values{
			"message": []string{err.Error()},
		})
	}

	query := url.Values{}
	query.Set("auth", "success")
	query.Set("access_token", tokens.AccessToken)
	query.Set("refresh_token", tokens.RefreshToken)
	query.Set("expires_in", strconv.FormatInt(expiresIn, 10))
	query.Set("accounts", string(accountsJSON))

	logrus.WithField("destination", destination).Info("Redirecionando para o front end com tokens")

	return destination + "?" + query.Encode()
}

func redirectWithError(destination string, errCode string, extra url.Values) string {
	query := url.Values{}
	query.Set("error", errCode)

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	return destination + "?" + query.Encode()
}
