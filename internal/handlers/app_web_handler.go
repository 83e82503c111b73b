package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/middleware"
)

// Shell administrativo: três variantes de navegação (mobile, tablet,
// desktop) em volta das mesmas cinco telas. A aba ativa pertence à rota,
// não ao layout.
type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	h.render(c, "login")
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	h.render(c, "dashboard")
}

func (h *AppWebHandler) Preview(c *gin.Context) {
	h.render(c, "preview")
}

func (h *AppWebHandler) Design(c *gin.Context) {
	h.render(c, "design")
}

func (h *AppWebHandler) Products(c *gin.Context) {
	h.render(c, "products")
}

func (h *AppWebHandler) Settings(c *gin.Context) {
	h.render(c, "settings")
}

func (h *AppWebHandler) render(c *gin.Context, page string) {
	c.HTML(http.StatusOK, "app.html", gin.H{
		"Page":   page,
		"Device": middleware.DeviceFrom(c),
	})
}
