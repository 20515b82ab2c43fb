package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const frontendBase = "http://localhost:8000"

func TestEncodeState(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		expected    string
	}{
		{
			name:        "Destino vazio vira o marcador padrão",
			destination: "",
			expected:    "default",
		},
		{
			name:        "Caminho relativo recebe a tag scan",
			destination: "/dashboard",
			expected:    "scan:/dashboard",
		},
		{
			name:        "URL absoluta também recebe a tag",
			destination: "http://external.example/x",
			expected:    "scan:http://external.example/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeState(tt.destination))
		})
	}
}

func TestDecodeState(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		expected string
	}{
		{
			name:     "State ausente resolve para a base do front end",
			state:    "",
			expected: frontendBase,
		},
		{
			name:     "Marcador padrão resolve para a base do front end",
			state:    "default",
			expected: frontendBase,
		},
		{
			name:     "State sem separador é tratado como malformado",
			state:    "dashboard",
			expected: frontendBase,
		},
		{
			name:     "Caminho começando com barra é anexado à base",
			state:    "scan:/pricing",
			expected: frontendBase + "/pricing",
		},
		{
			name:     "Caminho vazio após a tag ainda anexa a barra",
			state:    "scan:",
			expected: frontendBase + "/",
		},
		{
			name:     "Caminho sem barra ganha separador",
			state:    "scan:pricing",
			expected: frontendBase + "/pricing",
		},
		{
			// Comportamento atual documentado: URLs absolutas passam sem
			// validação de host (open redirect conhecido)
			name:     "URL absoluta é devolvida sem alteração",
			state:    "scan:http://external.example/x",
			expected: "http://external.example/x",
		},
		{
			name:     "Separadores extras no destino são preservados",
			state:    "scan:/path:with:colons",
			expected: frontendBase + "/path:with:colons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeState(tt.state).URL(frontendBase))
		})
	}
}

func TestDecodeState_RoundTrip(t *testing.T) {
	// Para todo destino começando com "/", decode(encode(d)) == base + d
	destinations := []string{"/", "/dashboard", "/pricing?plan=pro", "/a/b/c"}

	for _, destination := range destinations {
		decoded := DecodeState(EncodeState(destination))
		assert.Equal(t, frontendBase+destination, decoded.URL(frontendBase))
	}
}
