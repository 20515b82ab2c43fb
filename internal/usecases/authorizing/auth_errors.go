package authorizing

// Códigos de erro devolvidos ao navegador no query string do redirect.
// O consumidor final é um navegador no meio de uma navegação, então falhas
// viajam como parâmetros de URL e não como respostas JSON
const (
	// ErrCodeNoCode indica callback sem authorization code e sem erro do provedor
	ErrCodeNoCode = "no_code"

	// ErrCodeTokenExchangeFailed indica que o provedor recusou a troca do code
	ErrCodeTokenExchangeFailed = "token_exchange_failed"

	// ErrCodeServerError indica falha inesperada durante o callback
	ErrCodeServerError = "server_error"
)
