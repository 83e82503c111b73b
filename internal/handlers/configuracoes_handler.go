package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/audit"
	"github.com/MenuDoce/cardapio-api/internal/cache"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/store"
)

type ConfiguracoesHandler struct {
	stores *store.Manager
	audit  *audit.Dispatcher
	cache  *cache.Cache
}

func NewConfiguracoesHandler(stores *store.Manager, dispatcher *audit.Dispatcher, cc *cache.Cache) *ConfiguracoesHandler {
	return &ConfiguracoesHandler{stores: stores, audit: dispatcher, cache: cc}
}

func (h *ConfiguracoesHandler) Get(c *gin.Context) {
	st := h.stores.ForTenant(c.Request.Context(), currentUserID(c))
	c.JSON(http.StatusOK, st.Configuracoes())
}

func (h *ConfiguracoesHandler) Update(c *gin.Context) {
	userID := currentUserID(c)
	st := h.stores.ForTenant(c.Request.Context(), userID)

	var patch tenant.ConfiguracoesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := st.SaveConfiguracoes(c.Request.Context(), patch); err != nil {
		writeBusinessErr(c, err)
		return
	}

	invalidateMenu(c, st, h.cache)

	h.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "configuracoes_updated",
		Entity: "configuracoes",
	})

	c.JSON(http.StatusOK, st.Configuracoes())
}
