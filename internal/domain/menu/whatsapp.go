package menu

import (
	"net/url"
	"strings"
)

// OrderLink monta o deep link de pedido no WhatsApp: telefone sem
// formatação, código do país na frente e mensagem pré-preenchida com o
// nome do produto. Efeito de navegação apenas: não existe entidade de
// pedido no sistema.
func OrderLink(telefone, nomeProduto string) string {
	digits := stripNonDigits(telefone)
	// DDD + celular são no máximo 11 dígitos; acima disso o código do
	// país já veio no cadastro.
	if len(digits) <= 11 {
		digits = "55" + digits
	}

	msg := "Olá! Gostaria de fazer um pedido de: " + nomeProduto
	return "https://wa.me/" + digits + "?text=" + escapeQuery(msg)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
