package menu

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/models"
)

type fakeGateway struct {
	design   *models.DesignSettings
	config   *models.Configuracoes
	produtos []models.Produto

	listCalls   int
	produtosErr error
}

func (f *fakeGateway) GetDesignSettings(context.Context, uint) (*models.DesignSettings, error) {
	return f.design, nil
}

func (f *fakeGateway) GetDesignSettingsBySlug(_ context.Context, slug string) (*models.DesignSettings, error) {
	if f.design == nil || f.design.Slug != slug {
		return nil, httperr.NotFoundErr("loja_not_found")
	}
	cp := *f.design
	return &cp, nil
}

func (f *fakeGateway) UpsertDesignSettings(context.Context, uint, tenant.DesignSettingsPatch) error {
	return nil
}

func (f *fakeGateway) GetConfiguracoes(context.Context, uint) (*models.Configuracoes, error) {
	if f.config == nil {
		return nil, httperr.NotFoundErr("configuracoes_not_found")
	}
	cp := *f.config
	return &cp, nil
}

func (f *fakeGateway) UpsertConfiguracoes(context.Context, uint, tenant.ConfiguracoesPatch) error {
	return nil
}

func (f *fakeGateway) ListProdutos(_ context.Context, _ uint, opts tenant.ListProdutosOptions) ([]models.Produto, error) {
	f.listCalls++
	if f.produtosErr != nil {
		return nil, f.produtosErr
	}

	out := make([]models.Produto, 0, len(f.produtos))
	for _, p := range f.produtos {
		if opts.OnlyAvailable && !p.Disponivel {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeGateway) CreateProduto(context.Context, uint, tenant.ProdutoInput) (*models.Produto, error) {
	return nil, nil
}

func (f *fakeGateway) UpdateProduto(context.Context, uint, uint, tenant.ProdutoPatch) error {
	return nil
}

func (f *fakeGateway) DeleteProduto(context.Context, uint, uint) error {
	return nil
}

var _ tenant.Gateway = (*fakeGateway)(nil)

func gatewayDeExemplo() *fakeGateway {
	return &fakeGateway{
		design: &models.DesignSettings{
			ID:              1,
			UserID:          7,
			Slug:            "doces-da-vo",
			NomeConfeitaria: "Doces da Vó",
		},
		config: &models.Configuracoes{
			UserID:                     7,
			HorarioFuncionamentoInicio: "08:00",
			HorarioFuncionamentoFim:    "18:00",
			Telefone:                   "11987654321",
		},
		produtos: []models.Produto{
			{ID: 1, UserID: 7, Nome: "Bolo de Chocolate", Disponivel: true, Promocao: true},
			{ID: 2, UserID: 7, Nome: "Torta de Limão", Disponivel: true},
			{ID: 3, UserID: 7, Nome: "Pavê", Disponivel: false},
		},
	}
}

func resolverParaTeste(gw tenant.Gateway, em time.Time) *ResolveMenu {
	uc := NewResolveMenu(gw, nil)
	uc.now = func() time.Time { return em }
	return uc
}

func TestResolveMenuPorSlug(t *testing.T) {
	t.Parallel()

	gw := gatewayDeExemplo()
	uc := resolverParaTeste(gw, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))

	m, err := uc.Execute(context.Background(), "doces-da-vo", "")
	require.NoError(t, err)

	assert.Equal(t, "Doces da Vó", m.Design.NomeConfeitaria)
	assert.True(t, m.Status.Aberto)

	// Só os disponíveis aparecem, particionados em promo/regular.
	require.Len(t, m.Promocionais, 1)
	require.Len(t, m.Regulares, 1)
	assert.Equal(t, uint(1), m.Promocionais[0].ID)
	assert.Equal(t, uint(2), m.Regulares[0].ID)
}

func TestResolveMenuSlugDesconhecido(t *testing.T) {
	t.Parallel()

	uc := resolverParaTeste(gatewayDeExemplo(), time.Now())

	_, err := uc.Execute(context.Background(), "nao-existe", "")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestResolveMenuComBusca(t *testing.T) {
	t.Parallel()

	uc := resolverParaTeste(gatewayDeExemplo(), time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))

	m, err := uc.Execute(context.Background(), "doces-da-vo", "torta")
	require.NoError(t, err)
	assert.Empty(t, m.Promocionais)
	require.Len(t, m.Regulares, 1)
	assert.Equal(t, "Torta de Limão", m.Regulares[0].Nome)
}

func TestResolveMenuFalhaDeProdutosDegrada(t *testing.T) {
	t.Parallel()

	gw := gatewayDeExemplo()
	gw.produtosErr = httperr.UnavailableErr("db_down")
	uc := resolverParaTeste(gw, time.Now())

	m, err := uc.Execute(context.Background(), "doces-da-vo", "")
	require.NoError(t, err, "cardápio degrada para vazio em vez de falhar")
	assert.Empty(t, m.Promocionais)
	assert.Empty(t, m.Regulares)
}

func TestResolveMenuStatusForaDoHorario(t *testing.T) {
	t.Parallel()

	uc := resolverParaTeste(gatewayDeExemplo(), time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC))

	m, err := uc.Execute(context.Background(), "doces-da-vo", "")
	require.NoError(t, err)
	assert.False(t, m.Status.Aberto)
	assert.Equal(t, "Abre às 08:00", m.Status.Detalhe)
}
