package googleclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-pilot-api/internal/config"
)

func TestNormalizeCustomerID(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		expected   string
	}{
		{
			name:       "Remove o prefixo customers/ e os hífens",
			customerID: "customers/123-456-7890",
			expected:   "1234567890",
		},
		{
			name:       "Identificador já normalizado passa sem alteração",
			customerID: "1234567890",
			expected:   "1234567890",
		},
		{
			name:       "Apenas hífens são removidos quando não há prefixo",
			customerID: "123-456-7890",
			expected:   "1234567890",
		},
		{
			name:       "Prefixo no meio da string não é removido",
			customerID: "1234customers/567890",
			expected:   "1234customers/567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCustomerID(tt.customerID))
		})
	}
}

func TestGoogleClient_AuthCodeURL(t *testing.T) {
	cfg := &config.Config{
		Google: config.Google{
			ClientID:    "client-id",
			AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:    "https://oauth2.googleapis.com/token",
			RedirectURL: "http://localhost:3001/api/auth/callback/google",
		},
	}

	client := NewClient(cfg)

	authURL := client.AuthCodeURL("scan:/dashboard")

	assert.Contains(t, authURL, "https://accounts.google.com/o/oauth2/v2/auth")
	assert.Contains(t, authURL, "client_id=client-id")
	assert.Contains(t, authURL, "access_type=offline")
	assert.Contains(t, authURL, "prompt=consent")
	assert.Contains(t, authURL, "include_granted_scopes=true")
	assert.Contains(t, authURL, "state=scan%3A%2Fdashboard")
	assert.Contains(t, authURL, "adwords")
	assert.Contains(t, authURL, "userinfo.email")
	assert.Contains(t, authURL, "redirect_uri=http%3A%2F%2Flocalhost%3A3001%2Fapi%2Fauth%2Fcallback%2Fgoogle")
}
