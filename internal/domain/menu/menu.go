package menu

import (
	"strings"

	"github.com/MenuDoce/cardapio-api/internal/models"
)

// Filter aplica a busca do cardápio: substring, sem diferenciar
// maiúsculas, sobre nome OU descrição. Termo vazio devolve o conjunto
// inteiro inalterado.
func Filter(produtos []models.Produto, term string) []models.Produto {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return produtos
	}

	out := make([]models.Produto, 0, len(produtos))
	for _, p := range produtos {
		if strings.Contains(strings.ToLower(p.Nome), term) ||
			strings.Contains(strings.ToLower(p.Descricao), term) {
			out = append(out, p)
		}
	}
	return out
}

// Partition separa promoções dos itens regulares para as duas seções do
// cardápio, preservando a ordem de entrada.
func Partition(produtos []models.Produto) (promocionais, regulares []models.Produto) {
	promocionais = make([]models.Produto, 0, len(produtos))
	regulares = make([]models.Produto, 0, len(produtos))

	for _, p := range produtos {
		if p.Promocao {
			promocionais = append(promocionais, p)
		} else {
			regulares = append(regulares, p)
		}
	}
	return promocionais, regulares
}
