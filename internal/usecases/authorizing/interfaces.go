package authorizing

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// CallbackParams são os três parâmetros de query que o provedor devolve no
// callback OAuth. ProviderError tem precedência sobre a ausência de code
type CallbackParams struct {
	Code          string
	State         string
	ProviderError string
}

// Authorizer orquestra o fluxo de autorização: monta a URL de consentimento
// e processa o callback do provedor
type Authorizer interface {
	// AuthorizationURL monta a URL de autorização do Google para o state
	// informado (ou o destino padrão, se vazio)
	AuthorizationURL(state string) string

	// Callback processa o retorno do provedor e devolve a URL de
	// redirecionamento para o front end, com tokens ou erro no query string.
	// Nunca falha: toda falha vira um parâmetro de erro na URL
	Callback(ctx context.Context, params CallbackParams) string
}
