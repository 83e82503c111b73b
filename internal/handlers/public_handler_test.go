package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/models"
	ucmenu "github.com/MenuDoce/cardapio-api/internal/usecase/menu"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubGateway responde a loja pública com dados fixos ou um erro
// pré-configurado.
type stubGateway struct {
	design    *models.DesignSettings
	designErr error
	produtos  []models.Produto
}

func (s *stubGateway) GetDesignSettings(context.Context, uint) (*models.DesignSettings, error) {
	return s.design, s.designErr
}

func (s *stubGateway) GetDesignSettingsBySlug(context.Context, string) (*models.DesignSettings, error) {
	if s.designErr != nil {
		return nil, s.designErr
	}
	return s.design, nil
}

func (s *stubGateway) UpsertDesignSettings(context.Context, uint, tenant.DesignSettingsPatch) error {
	return nil
}

func (s *stubGateway) GetConfiguracoes(context.Context, uint) (*models.Configuracoes, error) {
	return nil, httperr.NotFoundErr("configuracoes_not_found")
}

func (s *stubGateway) UpsertConfiguracoes(context.Context, uint, tenant.ConfiguracoesPatch) error {
	return nil
}

func (s *stubGateway) ListProdutos(context.Context, uint, tenant.ListProdutosOptions) ([]models.Produto, error) {
	return s.produtos, nil
}

func (s *stubGateway) CreateProduto(context.Context, uint, tenant.ProdutoInput) (*models.Produto, error) {
	return nil, nil
}

func (s *stubGateway) UpdateProduto(context.Context, uint, uint, tenant.ProdutoPatch) error {
	return nil
}

func (s *stubGateway) DeleteProduto(context.Context, uint, uint) error {
	return nil
}

var _ tenant.Gateway = (*stubGateway)(nil)

func listProductsRequest(gw tenant.Gateway, slug string) *httptest.ResponseRecorder {
	h := NewPublicHandler(ucmenu.NewResolveMenu(gw, nil), gw)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/public/"+slug+"/products", nil)
	c.Params = gin.Params{{Key: "slug", Value: slug}}

	h.ListProducts(c)
	return w
}

func TestListProductsLojaInexistente(t *testing.T) {
	gw := &stubGateway{designErr: httperr.NotFoundErr("loja_not_found")}

	w := listProductsRequest(gw, "nao-existe")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProductsLojaIndisponivel(t *testing.T) {
	// banco fora do ar não é "loja não encontrada"
	gw := &stubGateway{designErr: httperr.UnavailableErr("database_error")}

	w := listProductsRequest(gw, "doces-da-vo")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListProductsOK(t *testing.T) {
	gw := &stubGateway{
		design: &models.DesignSettings{ID: 1, UserID: 1, Slug: "doces-da-vo", NomeConfeitaria: "Doces da Vó"},
		produtos: []models.Produto{
			{ID: 1, UserID: 1, Nome: "Bolo", Disponivel: true},
		},
	}

	w := listProductsRequest(gw, "doces-da-vo")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bolo")
}
