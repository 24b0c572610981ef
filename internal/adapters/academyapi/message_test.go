package academyapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageExtractor_Extract(t *testing.T) {
	t.Parallel()

	m := DefaultMessageExtractor()
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "message field", body: `{"message":"Aluno não encontrado"}`, want: "Aluno não encontrado"},
		{name: "portuguese field", body: `{"mensagem":"Turma lotada"}`, want: "Turma lotada"},
		{
			name: "bean validation",
			body: `{"errors":[{"field":"cpf","defaultMessage":"CPF inválido"}]}`,
			want: "CPF inválido",
		},
		{
			name: "message wins over error",
			body: `{"error":"Internal Server Error","message":"Cannot invoke \"Endereco.getCidade()\" because \"endereco\" is null"}`,
			want: `Cannot invoke "Endereco.getCidade()" because "endereco" is null`,
		},
		{
			name: "error wins over field errors",
			body: `{"error":"Bad Request","errors":[{"defaultMessage":"CPF inválido"}]}`,
			want: "Bad Request",
		},
		{name: "error wins over detail", body: `{"error":"Bad Request","detail":"detalhe"}`, want: "Bad Request"},
		{name: "detail before title", body: `{"title":"Conflict","detail":"E-mail já cadastrado"}`, want: "E-mail já cadastrado"},
		{name: "oauth error description", body: `{"error_description":"token expirado"}`, want: "token expirado"},
		{name: "empty message falls through", body: `{"message":"","error":"Bad Request"}`, want: "Bad Request"},
		{name: "string list", body: `{"message":["nome obrigatório","email inválido"]}`, want: "nome obrigatório; email inválido"},
		{name: "json string", body: `"Falha ao salvar"`, want: "Falha ao salvar"},
		{name: "plain text", body: "Service unavailable", contentType: "text/plain", want: "Service unavailable"},
		{name: "html page", body: "<html><body>502</body></html>", contentType: "text/html", want: ""},
		{name: "empty body", body: "  ", want: ""},
		{name: "no known field", body: `{"status":500}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Extract([]byte(tt.body), tt.contentType))
		})
	}
}

func TestNewMessageExtractor(t *testing.T) {
	t.Parallel()

	m, err := NewMessageExtractor([]string{"", "problem.reason"})
	require.NoError(t, err)
	assert.Equal(t, "quota", m.Extract([]byte(`{"problem":{"reason":"quota"}}`), "application/json"))

	_, err = NewMessageExtractor([]string{"errors[0"})
	assert.Error(t, err)
}
