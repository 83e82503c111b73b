package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/audit"
	"github.com/MenuDoce/cardapio-api/internal/cache"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/store"
)

type DesignHandler struct {
	stores *store.Manager
	audit  *audit.Dispatcher
	cache  *cache.Cache
}

func NewDesignHandler(stores *store.Manager, dispatcher *audit.Dispatcher, cc *cache.Cache) *DesignHandler {
	return &DesignHandler{stores: stores, audit: dispatcher, cache: cc}
}

func (h *DesignHandler) Get(c *gin.Context) {
	st := h.stores.ForTenant(c.Request.Context(), currentUserID(c))

	// ausente não é erro: a loja simplesmente ainda não salvou o design
	c.JSON(http.StatusOK, st.DesignSettings())
}

func (h *DesignHandler) Update(c *gin.Context) {
	userID := currentUserID(c)
	st := h.stores.ForTenant(c.Request.Context(), userID)

	var patch tenant.DesignSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	oldSlug := ""
	if ds := st.DesignSettings(); ds != nil {
		oldSlug = ds.Slug
	}

	if err := st.SaveDesignSettings(c.Request.Context(), patch); err != nil {
		writeBusinessErr(c, err)
		return
	}

	h.cache.InvalidateMenu(c.Request.Context(), oldSlug)
	invalidateMenu(c, st, h.cache)

	h.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "design_updated",
		Entity: "design_settings",
	})

	c.JSON(http.StatusOK, st.DesignSettings())
}
