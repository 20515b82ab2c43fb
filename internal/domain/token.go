package domain

import "fmt"

// TokenSet é o resultado da troca do authorization code no endpoint de
// token do Google. Nunca é armazenado no servidor: a posse passa ao
// navegador no redirect de retorno
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenExchangeError indica que o provedor respondeu com status de erro
// durante a troca do authorization code. Body carrega a resposta crua do
// provedor para diagnóstico
type TokenExchangeError struct {
	StatusCode int
	Body       string
}

func (e *TokenExchangeError) Error() string {
	return fmt.Sprintf("troca de token falhou com status %d: %s", e.StatusCode, e.Body)
}
