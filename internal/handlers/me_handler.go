package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MenuDoce/cardapio-api/internal/models"
	"github.com/MenuDoce/cardapio-api/internal/store"
)

type MeHandler struct {
	db     *gorm.DB
	stores *store.Manager
}

func NewMeHandler(db *gorm.DB, stores *store.Manager) *MeHandler {
	return &MeHandler{db: db, stores: stores}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	st := h.stores.ForTenant(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"nome":  user.Nome,
			"email": user.Email,
		},
		"design_settings": st.DesignSettings(),
		"configuracoes":   st.Configuracoes(),
		"loading":         st.Loading(),
	})
}
