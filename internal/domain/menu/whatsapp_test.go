package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderLink(t *testing.T) {
	t.Parallel()

	link := OrderLink("(11) 98765-4321", "Bolo de Chocolate")

	assert.Equal(t,
		"https://wa.me/5511987654321?text=Ol%C3%A1%21%20Gostaria%20de%20fazer%20um%20pedido%20de%3A%20Bolo%20de%20Chocolate",
		link,
	)
}

func TestOrderLinkTelefoneComCodigoDoPais(t *testing.T) {
	t.Parallel()

	// 12+ dígitos já incluem o código do país; nada é prefixado.
	link := OrderLink("+55 11 98765-4321", "Brownie")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?"), link)
}

func TestOrderLinkUsaPercentVinteParaEspacos(t *testing.T) {
	t.Parallel()

	link := OrderLink("11987654321", "Torta de Limão")
	assert.NotContains(t, link, "+", "espaço na mensagem deve virar %20")
	assert.Contains(t, link, "%20")
}
