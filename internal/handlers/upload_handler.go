package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenuDoce/cardapio-api/internal/audit"
	"github.com/MenuDoce/cardapio-api/internal/cache"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/infra/storage"
	"github.com/MenuDoce/cardapio-api/internal/store"
)

const maxUploadBytes = 10 << 20 // 10 MB

type UploadHandler struct {
	stores *store.Manager
	images tenant.ImageStore
	audit  *audit.Dispatcher
	cache  *cache.Cache
}

func NewUploadHandler(stores *store.Manager, images tenant.ImageStore, dispatcher *audit.Dispatcher, cc *cache.Cache) *UploadHandler {
	return &UploadHandler{stores: stores, images: images, audit: dispatcher, cache: cc}
}

// Upload recebe uma imagem multipart (campo "file") e o tipo de destino
// (logo, banner1, banner2 ou produto). Logo e banners são gravados direto
// no design da loja; a URL da foto de produto volta para o formulário.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID := currentUserID(c)
	st := h.stores.ForTenant(c.Request.Context(), userID)

	tipo := c.PostForm("tipo")
	bucket := bucketFor(tipo)
	if bucket == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_tipo"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_file"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_file"})
		return
	}

	data, contentType, err := storage.NormalizeImage(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_image"})
		return
	}

	name := storage.Filename(tipo, "webp")
	url, err := h.images.Upload(c.Request.Context(), data, contentType, bucket, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}

	// logo e banners entram direto no design; produto só devolve a URL
	var patch tenant.DesignSettingsPatch
	switch tipo {
	case "logo":
		patch.LogoURL = &url
	case "banner1":
		patch.Banner1URL = &url
	case "banner2":
		patch.Banner2URL = &url
	}
	if patch != (tenant.DesignSettingsPatch{}) {
		if err := st.SaveDesignSettings(c.Request.Context(), patch); err != nil {
			writeBusinessErr(c, err)
			return
		}
		invalidateMenu(c, st, h.cache)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "image_uploaded",
		Entity:   "image",
		Metadata: gin.H{"tipo": tipo, "path": name},
	})

	c.JSON(http.StatusCreated, gin.H{"url": url, "path": name})
}

func bucketFor(tipo string) string {
	switch tipo {
	case "logo":
		return storage.BucketLogos
	case "banner1", "banner2":
		return storage.BucketBanners
	case "produto":
		return storage.BucketProdutos
	default:
		return ""
	}
}
