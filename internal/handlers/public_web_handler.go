package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/middleware"
	ucmenu "github.com/MenuDoce/cardapio-api/internal/usecase/menu"
)

type PublicWebHandler struct {
	resolver *ucmenu.ResolveMenu
}

func NewPublicWebHandler(resolver *ucmenu.ResolveMenu) *PublicWebHandler {
	return &PublicWebHandler{resolver: resolver}
}

// ShowMenuPage renderiza o cardápio público de /cardapio/:slug. Slug
// desconhecido é estado terminal: página de não encontrado, sem retry.
func (h *PublicWebHandler) ShowMenuPage(c *gin.Context) {
	slug := c.Param("slug")
	query := c.Query("query")

	m, err := h.resolver.Execute(c.Request.Context(), slug, query)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{
				"Mensagem": "Cardápio não encontrado.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "notfound.html", gin.H{
			"Mensagem": "Erro ao carregar o cardápio. Tente novamente.",
		})
		return
	}

	telefone := ""
	if m.Configuracoes != nil {
		telefone = m.Configuracoes.Telefone
	}

	var banners []string
	if m.Design.Banner1URL != "" {
		banners = append(banners, m.Design.Banner1URL)
	}
	if m.Design.Banner2URL != "" {
		banners = append(banners, m.Design.Banner2URL)
	}

	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Menu":     m,
		"Query":    query,
		"Telefone": telefone,
		"Banners":  banners,
		"Device":   middleware.DeviceFrom(c),
	})
}
