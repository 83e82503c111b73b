package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MenuDoce/cardapio-api/internal/models"
)

func produtosExemplo() []models.Produto {
	return []models.Produto{
		{ID: 1, Nome: "Bolo de Chocolate", Descricao: "Cobertura de brigadeiro", Promocao: true},
		{ID: 2, Nome: "Torta de Limão", Descricao: "Merengue maçaricado"},
		{ID: 3, Nome: "Brownie", Descricao: "Com nozes", Promocao: true},
	}
}

func TestFilterSemTermoDevolveTudo(t *testing.T) {
	t.Parallel()

	in := produtosExemplo()
	assert.Equal(t, in, Filter(in, ""))
	assert.Equal(t, in, Filter(in, "   "))
}

func TestFilterCaseInsensitive(t *testing.T) {
	t.Parallel()

	in := produtosExemplo()

	out := Filter(in, "BOLO")
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)

	// Busca também alcança a descrição.
	out = Filter(in, "nozes")
	require.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].ID)

	assert.Empty(t, Filter(in, "pudim"))
}

func TestPartition(t *testing.T) {
	t.Parallel()

	in := produtosExemplo()
	promocionais, regulares := Partition(in)

	require.Len(t, promocionais, 2)
	require.Len(t, regulares, 1)
	assert.Equal(t, uint(1), promocionais[0].ID)
	assert.Equal(t, uint(3), promocionais[1].ID)
	assert.Equal(t, uint(2), regulares[0].ID)

	// As duas seções juntas cobrem o conjunto de entrada.
	assert.Equal(t, len(in), len(promocionais)+len(regulares))
}

func TestPartitionVazio(t *testing.T) {
	t.Parallel()

	promocionais, regulares := Partition(nil)
	assert.Empty(t, promocionais)
	assert.Empty(t, regulares)
}
