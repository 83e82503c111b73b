package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/audit"
	"github.com/MenuDoce/cardapio-api/internal/cache"
	menudomain "github.com/MenuDoce/cardapio-api/internal/domain/menu"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httpresp"
	"github.com/MenuDoce/cardapio-api/internal/store"
)

type ProdutoHandler struct {
	stores *store.Manager
	audit  *audit.Dispatcher
	cache  *cache.Cache
}

func NewProdutoHandler(stores *store.Manager, dispatcher *audit.Dispatcher, cc *cache.Cache) *ProdutoHandler {
	return &ProdutoHandler{stores: stores, audit: dispatcher, cache: cc}
}

// --------- Requests ---------

type CreateProdutoRequest struct {
	Nome             string   `json:"nome" binding:"required"`
	Descricao        string   `json:"descricao"`
	// sem required: preço zero ("sob consulta") é cadastro válido
	PrecoNormal      float64  `json:"preco_normal" binding:"min=0"`
	PrecoPromocional *float64 `json:"preco_promocional"`
	ImagemURL        string   `json:"imagem_url"`
	Categoria        string   `json:"categoria"`
	FormaVenda       string   `json:"forma_venda"`
	Disponivel       *bool    `json:"disponivel"`
	Promocao         bool     `json:"promocao"`
}

// --------- Handlers ---------

func (h *ProdutoHandler) List(c *gin.Context) {
	st := h.stores.ForTenant(c.Request.Context(), currentUserID(c))

	// a lista já está no snapshot, mais novos primeiro; a busca do admin
	// usa o mesmo filtro do cardápio
	produtos := menudomain.Filter(st.Produtos(), c.Query("query"))

	httpresp.List(c, produtos)
}

func (h *ProdutoHandler) Create(c *gin.Context) {
	userID := currentUserID(c)
	st := h.stores.ForTenant(c.Request.Context(), userID)

	var req CreateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	disponivel := true
	if req.Disponivel != nil {
		disponivel = *req.Disponivel
	}

	produto, err := st.AddProduto(c.Request.Context(), tenant.ProdutoInput{
		Nome:             req.Nome,
		Descricao:        req.Descricao,
		PrecoNormal:      req.PrecoNormal,
		PrecoPromocional: req.PrecoPromocional,
		ImagemURL:        req.ImagemURL,
		Categoria:        req.Categoria,
		FormaVenda:       req.FormaVenda,
		Disponivel:       disponivel,
		Promocao:         req.Promocao,
	})
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	invalidateMenu(c, st, h.cache)

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "produto_created",
		Entity:   "produto",
		EntityID: &produto.ID,
	})

	httpresp.Created(c, produto)
}

func (h *ProdutoHandler) Update(c *gin.Context) {
	userID := currentUserID(c)
	st := h.stores.ForTenant(c.Request.Context(), userID)

	produtoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_produto_id"})
		return
	}

	var patch tenant.ProdutoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := st.EditProduto(c.Request.Context(), uint(produtoID), patch); err != nil {
		writeBusinessErr(c, err)
		return
	}

	invalidateMenu(c, st, h.cache)

	id := uint(produtoID)
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "produto_updated",
		Entity:   "produto",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *ProdutoHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)
	st := h.stores.ForTenant(c.Request.Context(), userID)

	produtoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_produto_id"})
		return
	}

	if err := st.RemoveProduto(c.Request.Context(), uint(produtoID)); err != nil {
		writeBusinessErr(c, err)
		return
	}

	invalidateMenu(c, st, h.cache)

	id := uint(produtoID)
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "produto_deleted",
		Entity:   "produto",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
