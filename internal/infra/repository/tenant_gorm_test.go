package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/models"
)

func TestApplyConfiguracoesPatchTelefonesVazio(t *testing.T) {
	t.Parallel()

	var patch tenant.ConfiguracoesPatch
	require.NoError(t, json.Unmarshal([]byte(`{"telefones":[]}`), &patch))
	require.NotNil(t, patch.Telefones, "JSON [] decodifica em slice vazio não-nil")

	cfg := &models.Configuracoes{
		UserID:    1,
		Telefone:  "11987654321",
		Telefones: []string{"11987654321"},
	}

	require.NoError(t, applyConfiguracoesPatch(cfg, patch))
	assert.Empty(t, cfg.Telefones)
	assert.Empty(t, cfg.Telefone, "lista vazia limpa também o telefone principal")
}

func TestApplyConfiguracoesPatchTelefones(t *testing.T) {
	t.Parallel()

	cfg := &models.Configuracoes{UserID: 1}
	patch := tenant.ConfiguracoesPatch{Telefones: []string{"1133334444", "11987654321"}}

	require.NoError(t, applyConfiguracoesPatch(cfg, patch))
	assert.Equal(t, []string{"1133334444", "11987654321"}, cfg.Telefones)
	assert.Equal(t, "1133334444", cfg.Telefone, "o primeiro da lista vira o principal persistido")
}

func TestApplyConfiguracoesPatchTaxaNegativa(t *testing.T) {
	t.Parallel()

	cfg := &models.Configuracoes{UserID: 1, TaxaEntrega: 5}
	taxa := -1.0

	err := applyConfiguracoesPatch(cfg, tenant.ConfiguracoesPatch{TaxaEntrega: &taxa})
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.Equal(t, 5.0, cfg.TaxaEntrega)
}

func TestApplyProdutoPatchPrecoNegativo(t *testing.T) {
	t.Parallel()

	produto := &models.Produto{ID: 1, Nome: "Bolo", PrecoNormal: 30}
	preco := -10.0

	err := applyProdutoPatch(produto, tenant.ProdutoPatch{PrecoNormal: &preco})
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.Equal(t, 30.0, produto.PrecoNormal)
}

func TestApplyProdutoPatchPrecoZero(t *testing.T) {
	t.Parallel()

	produto := &models.Produto{ID: 1, Nome: "Bolo", PrecoNormal: 30}
	preco := 0.0

	require.NoError(t, applyProdutoPatch(produto, tenant.ProdutoPatch{PrecoNormal: &preco}))
	assert.Zero(t, produto.PrecoNormal, "preço zero é valor válido, não ausência")
}
