package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/store"
)

type DashboardHandler struct {
	stores *store.Manager
}

func NewDashboardHandler(stores *store.Manager) *DashboardHandler {
	return &DashboardHandler{stores: stores}
}

// Números do painel inicial, calculados sobre o snapshot do tenant.
func (h *DashboardHandler) Get(c *gin.Context) {
	st := h.stores.ForTenant(c.Request.Context(), currentUserID(c))

	produtos := st.Produtos()

	var disponiveis, promocoes int
	for _, p := range produtos {
		if p.Disponivel {
			disponiveis++
		}
		if p.Promocao {
			promocoes++
		}
	}

	configurado := st.DesignSettings() != nil

	c.JSON(http.StatusOK, gin.H{
		"total_produtos":       len(produtos),
		"produtos_disponiveis": disponiveis,
		"produtos_em_promocao": promocoes,
		"cardapio_configurado": configurado,
	})
}
