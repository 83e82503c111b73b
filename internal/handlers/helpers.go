package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/cache"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/middleware"
	"github.com/MenuDoce/cardapio-api/internal/store"
)

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

// Traduz erros de negócio tipados para a resposta HTTP. Qualquer coisa
// fora da taxonomia vira 500 genérico.
func writeBusinessErr(c *gin.Context, err error) {
	kind, ok := httperr.KindOf(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch kind {
	case httperr.KindNotFound:
		httperr.NotFound(c, err.Error(), "Registro não encontrado.")
	case httperr.KindUnauthorized:
		httperr.Unauthorized(c, err.Error(), "Sessão inválida.")
	case httperr.KindConflict:
		httperr.Conflict(c, err.Error(), "Conflito com dados já existentes.")
	default:
		httperr.Internal(c, err.Error(), "Serviço temporariamente indisponível.")
	}
}

// O cardápio público em cache fica obsoleto após qualquer mutação do dono.
func invalidateMenu(c *gin.Context, st *store.TenantStore, cc *cache.Cache) {
	if ds := st.DesignSettings(); ds != nil {
		cc.InvalidateMenu(c.Request.Context(), ds.Slug)
	}
}
