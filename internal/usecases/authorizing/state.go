package authorizing

import "strings"

// O parâmetro state do OAuth carrega o destino de retorno do usuário no
// formato "scan:<destino>". Internamente o destino é um tipo próprio em vez
// de uma string solta, para que um state malformado vire o destino padrão
// já na borda e não se propague

const (
	// defaultStateMarker é o valor literal que representa "sem destino"
	defaultStateMarker = "default"

	// stateTag prefixa destinos codificados; o decode separa apenas na
	// primeira ocorrência do separador
	stateTag = "scan"

	stateSeparator = ":"
)

// ReturnDestination é o destino de retorno decodificado do state.
// O valor zero é o destino padrão (a base do front end)
type ReturnDestination struct {
	defaulted bool
	path      string
}

// DefaultDestination retorna o destino padrão
func DefaultDestination() ReturnDestination {
	return ReturnDestination{defaulted: true}
}

// EncodeState serializa um destino para o parâmetro state.
// Destino vazio vira o marcador padrão
func EncodeState(destination string) string {
	if destination == "" {
		return defaultStateMarker
	}
	return stateTag + stateSeparator + destination
}

// DecodeState interpreta o parâmetro state vindo do provedor. Qualquer
// valor ausente ou malformado resulta no destino padrão
func DecodeState(state string) ReturnDestination {
	if state == "" || state == defaultStateMarker {
		return DefaultDestination()
	}

	// Divide apenas na primeira ocorrência: o destino pode conter o
	// separador (ex.: uma URL com esquema)
	parts := strings.SplitN(state, stateSeparator, 2)
	if len(parts) < 2 {
		return DefaultDestination()
	}

	return ReturnDestination{path: parts[1]}
}

// URL resolve o destino para a URL final de redirecionamento, relativa à
// base do front end.
//
// Destinos começando com "http" são devolvidos como URL absoluta sem
// validação de host — comportamento herdado do contrato atual do front end
// e um open redirect conhecido (ver DESIGN.md)
func (d ReturnDestination) URL(frontendBaseURL string) string {
	if d.defaulted {
		return frontendBaseURL
	}

	if strings.HasPrefix(d.path, "/") {
		return frontendBaseURL + d.path
	}

	if strings.HasPrefix(d.path, "http") {
		return d.path
	}

	return frontendBaseURL + "/" + d.path
}
