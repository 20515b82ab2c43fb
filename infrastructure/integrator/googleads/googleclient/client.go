package googleclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	googledomain "github.com/vfg2006/ads-pilot-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/domain"
	"golang.org/x/oauth2"
)

// Escopos solicitados no consentimento: identidade básica e acesso às
// contas de anúncios
var oauthScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/adwords",
}

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.TokenSet, error)
	ListAccessibleCustomers(ctx context.Context, accessToken string) ([]string, error)
	SearchCampaigns(ctx context.Context, accessToken string, customerID string) ([]googledomain.SearchRow, error)
}

type GoogleClient struct {
	Cfg        *config.Config
	oauth      *oauth2.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleClient{
		Cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       oauthScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.Google.AuthURL,
				TokenURL: cfg.Google.TokenURL,
			},
		},
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// AuthCodeURL monta a URL de autorização do Google. access_type=offline e
// prompt=consent garantem que um refresh token seja emitido
func (c *GoogleClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// NormalizeCustomerID converte o identificador de conta para o formato
// exigido pelo endpoint de relatórios: sem o prefixo "customers/" e sem hífens
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimPrefix(customerID, "customers/"), "-", "")
}
