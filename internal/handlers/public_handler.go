package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menudomain "github.com/MenuDoce/cardapio-api/internal/domain/menu"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	ucmenu "github.com/MenuDoce/cardapio-api/internal/usecase/menu"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	resolver *ucmenu.ResolveMenu
	gw       tenant.Gateway
}

func NewPublicHandler(resolver *ucmenu.ResolveMenu, gw tenant.Gateway) *PublicHandler {
	return &PublicHandler{resolver: resolver, gw: gw}
}

////////////////////////////////////////////////////////
// MENU
////////////////////////////////////////////////////////

func (h *PublicHandler) Menu(c *gin.Context) {
	slug := c.Param("slug")

	m, err := h.resolver.Execute(c.Request.Context(), slug, c.Query("query"))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httperr.NotFound(c, "loja_not_found", "Loja não encontrada.")
			return
		}
		httperr.Internal(c, "menu_failed", "Erro ao carregar o cardápio.")
		return
	}

	c.JSON(http.StatusOK, m)
}

////////////////////////////////////////////////////////
// PRODUCTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListProducts(c *gin.Context) {
	slug := c.Param("slug")

	design, err := h.gw.GetDesignSettingsBySlug(c.Request.Context(), slug)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httperr.NotFound(c, "loja_not_found", "Loja não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_load_loja", "Erro ao carregar a loja.")
		return
	}

	produtos, err := h.gw.ListProdutos(c.Request.Context(), design.UserID, tenant.ListProdutosOptions{
		OnlyAvailable: true,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_produtos", "Erro ao listar produtos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"design_settings": design,
		"produtos":        menudomain.Filter(produtos, c.Query("query")),
	})
}
