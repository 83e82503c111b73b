package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MenuDoce/cardapio-api/internal/cache"
	"github.com/MenuDoce/cardapio-api/internal/config"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/models"
	"github.com/MenuDoce/cardapio-api/internal/validators"
)

const resetTokenTTL = 30 * time.Minute

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	gw     tenant.Gateway
	cache  *cache.Cache
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, gw tenant.Gateway, c *cache.Cache) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, gw: gw, cache: c}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome            string `json:"nome" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	NomeConfeitaria string `json:"nome_confeitaria"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Nome:         req.Nome,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	// Semeia o design com o nome informado; o slug é derivado dele. Falha
	// aqui não impede o cadastro, a loja configura depois.
	if req.NomeConfeitaria != "" {
		patch := tenant.DesignSettingsPatch{NomeConfeitaria: &req.NomeConfeitaria}
		if err := h.gw.UpsertDesignSettings(c.Request.Context(), user.ID, patch); err != nil {
			log.Warn().Err(err).Uint("user", user.ID).Msg("falha ao semear design settings no cadastro")
		}
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"nome":  user.Nome,
			"email": user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"nome":  user.Nome,
			"email": user.Email,
		},
		"token": token,
	})
}

// PasswordReset emite um token de uso único com validade curta. A resposta
// é 200 exista a conta ou não, para não revelar e-mails cadastrados.
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	resp := gin.H{"message": "Se o e-mail estiver cadastrado, você receberá as instruções de redefinição."}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	token := uuid.NewString()
	if err := h.cache.SetResetToken(c.Request.Context(), token, user.ID, resetTokenTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset_unavailable"})
		return
	}

	log.Info().Uint("user", user.ID).Msg("token de redefinição de senha emitido")

	// sem serviço de e-mail em desenvolvimento, o token volta na resposta
	if !h.config.IsProduction() {
		resp["token"] = token
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) PasswordResetConfirm(c *gin.Context) {
	var req PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	userID, ok := h.cache.TakeResetToken(c.Request.Context(), req.Token)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_or_expired_token"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
