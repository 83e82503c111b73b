package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/models"
)

// TenantStore mantém a visão em memória dos dados do tenant assinado:
// design, configurações e lista de produtos. A política é recarregar tudo
// após qualquer mutação bem-sucedida (reload-after-write) em vez de
// remendar o estado local.
//
// Dois saves em sequência antes do primeiro reload terminar podem
// intercalar; o último Load a resolver vence. Janela de inconsistência
// aceita, não há lock de mutação.
type TenantStore struct {
	gw tenant.Gateway

	mu       sync.RWMutex
	ownerID  uint
	loading  bool
	design   *models.DesignSettings
	config   *models.Configuracoes
	produtos []models.Produto
}

func New(gw tenant.Gateway) *TenantStore {
	return &TenantStore{gw: gw}
}

// SetTenant troca a identidade dona do store. Transição dispara um Load
// completo; sair (ownerID 0) apenas zera o snapshot.
func (s *TenantStore) SetTenant(ctx context.Context, ownerID uint) error {
	s.mu.Lock()
	if s.ownerID == ownerID {
		s.mu.Unlock()
		return nil
	}
	s.ownerID = ownerID
	s.design = nil
	s.config = nil
	s.produtos = nil
	s.mu.Unlock()

	if ownerID == 0 {
		return nil
	}
	return s.Load(ctx)
}

// Load busca as três coleções em paralelo e só publica o snapshot quando
// as três resolverem. Falha em produtos vira lista vazia; design ou
// configurações ausentes viram nil, nunca erro.
func (s *TenantStore) Load(ctx context.Context) error {
	s.mu.Lock()
	owner := s.ownerID
	if owner == 0 {
		s.mu.Unlock()
		return httperr.UnauthorizedErr("not_signed_in")
	}
	s.loading = true
	s.mu.Unlock()

	var (
		design   *models.DesignSettings
		config   *models.Configuracoes
		produtos []models.Produto
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		if d, err := s.gw.GetDesignSettings(ctx, owner); err == nil {
			design = d
		}
	}()
	go func() {
		defer wg.Done()
		if c, err := s.gw.GetConfiguracoes(ctx, owner); err == nil {
			config = c
		}
	}()
	go func() {
		defer wg.Done()
		p, err := s.gw.ListProdutos(ctx, owner, tenant.ListProdutosOptions{})
		if err != nil {
			log.Warn().Err(err).Uint("owner", owner).Msg("falha ao listar produtos; usando lista vazia")
			p = []models.Produto{}
		}
		produtos = p
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.ownerID != owner {
		// tenant trocou durante o load; resultado descartado
		return nil
	}
	s.design = design
	s.config = config
	s.produtos = produtos
	return nil
}

// --------------------------------------------------
// Snapshot
// --------------------------------------------------

func (s *TenantStore) Owner() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID
}

func (s *TenantStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *TenantStore) DesignSettings() *models.DesignSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.design == nil {
		return nil
	}
	d := *s.design
	return &d
}

func (s *TenantStore) Configuracoes() *models.Configuracoes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return nil
	}
	c := *s.config
	return &c
}

func (s *TenantStore) Produtos() []models.Produto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Produto, len(s.produtos))
	copy(out, s.produtos)
	return out
}

// --------------------------------------------------
// Mutações (delegam ao gateway e recarregam)
// --------------------------------------------------

func (s *TenantStore) SaveDesignSettings(ctx context.Context, patch tenant.DesignSettingsPatch) error {
	owner, ok := s.signedOwner()
	if !ok {
		return httperr.UnauthorizedErr("not_signed_in")
	}
	if err := s.gw.UpsertDesignSettings(ctx, owner, patch); err != nil {
		return err
	}
	return s.Load(ctx)
}

func (s *TenantStore) SaveConfiguracoes(ctx context.Context, patch tenant.ConfiguracoesPatch) error {
	owner, ok := s.signedOwner()
	if !ok {
		return httperr.UnauthorizedErr("not_signed_in")
	}
	if err := s.gw.UpsertConfiguracoes(ctx, owner, patch); err != nil {
		return err
	}
	return s.Load(ctx)
}

func (s *TenantStore) AddProduto(ctx context.Context, in tenant.ProdutoInput) (*models.Produto, error) {
	owner, ok := s.signedOwner()
	if !ok {
		return nil, httperr.UnauthorizedErr("not_signed_in")
	}
	produto, err := s.gw.CreateProduto(ctx, owner, in)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return produto, nil
}

func (s *TenantStore) EditProduto(ctx context.Context, produtoID uint, patch tenant.ProdutoPatch) error {
	owner, ok := s.signedOwner()
	if !ok {
		return httperr.UnauthorizedErr("not_signed_in")
	}
	if err := s.gw.UpdateProduto(ctx, owner, produtoID, patch); err != nil {
		return err
	}
	return s.Load(ctx)
}

func (s *TenantStore) RemoveProduto(ctx context.Context, produtoID uint) error {
	owner, ok := s.signedOwner()
	if !ok {
		return httperr.UnauthorizedErr("not_signed_in")
	}
	if err := s.gw.DeleteProduto(ctx, owner, produtoID); err != nil {
		// falha não recarrega: a lista em cache fica como estava
		return err
	}
	return s.Load(ctx)
}

func (s *TenantStore) signedOwner() (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID, s.ownerID != 0
}
