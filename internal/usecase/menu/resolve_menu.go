package menu

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MenuDoce/cardapio-api/internal/cache"
	domain "github.com/MenuDoce/cardapio-api/internal/domain/menu"
	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/models"
	"github.com/MenuDoce/cardapio-api/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type ResolvedMenu struct {
	Design        models.DesignSettings `json:"design_settings"`
	Configuracoes *models.Configuracoes `json:"configuracoes,omitempty"`
	Status        domain.Status         `json:"status"`
	Promocionais  []models.Produto      `json:"promocionais"`
	Regulares     []models.Produto      `json:"regulares"`
}

// ======================================================
// USE CASE
// ======================================================

// ResolveMenu resolve o cardápio público: slug → design settings → dados
// do dono (configurações + produtos disponíveis, mais novos primeiro) →
// status aberto/fechado → filtro de busca → partição promo/regular.
//
// Slug desconhecido é terminal (not_found, sem retry). Falha ao listar
// produtos degrada para cardápio vazio.
type ResolveMenu struct {
	gw    tenant.Gateway
	cache *cache.Cache
	now   func() time.Time
}

func NewResolveMenu(gw tenant.Gateway, c *cache.Cache) *ResolveMenu {
	return &ResolveMenu{
		gw:    gw,
		cache: c,
		now:   timezone.Now,
	}
}

func (uc *ResolveMenu) Execute(
	ctx context.Context,
	slug string,
	query string,
) (*ResolvedMenu, error) {

	// Cache só cobre a visão sem busca; o status é recalculado no hit
	// porque depende do relógio, não do snapshot.
	if query == "" {
		if b, ok := uc.cache.GetMenu(ctx, slug); ok {
			var m ResolvedMenu
			if err := json.Unmarshal(b, &m); err == nil {
				m.Status = domain.StatusAt(m.Configuracoes, uc.now())
				return &m, nil
			}
		}
	}

	design, err := uc.gw.GetDesignSettingsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	cfg, _ := uc.gw.GetConfiguracoes(ctx, design.UserID)

	produtos, err := uc.gw.ListProdutos(ctx, design.UserID, tenant.ListProdutosOptions{
		OnlyAvailable: true,
	})
	if err != nil {
		produtos = []models.Produto{}
	}

	promocionais, regulares := domain.Partition(domain.Filter(produtos, query))

	m := &ResolvedMenu{
		Design:        *design,
		Configuracoes: cfg,
		Status:        domain.StatusAt(cfg, uc.now()),
		Promocionais:  promocionais,
		Regulares:     regulares,
	}

	if query == "" {
		if b, err := json.Marshal(m); err == nil {
			uc.cache.SetMenu(ctx, slug, b)
		}
	}

	return m, nil
}
