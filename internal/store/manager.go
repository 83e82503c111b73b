package store

import (
	"context"
	"sync"

	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
)

// Manager entrega o TenantStore de cada tenant autenticado. O primeiro
// acesso (transição de login) dispara o Load inicial.
type Manager struct {
	gw tenant.Gateway

	mu     sync.Mutex
	stores map[uint]*TenantStore
}

func NewManager(gw tenant.Gateway) *Manager {
	return &Manager{
		gw:     gw,
		stores: make(map[uint]*TenantStore),
	}
}

func (m *Manager) ForTenant(ctx context.Context, ownerID uint) *TenantStore {
	m.mu.Lock()
	st, ok := m.stores[ownerID]
	if !ok {
		st = New(m.gw)
		// a identidade entra antes de publicar no mapa: outro request do
		// mesmo tenant nunca enxerga um store deslogado no meio do load
		if ownerID != 0 {
			st.ownerID = ownerID
			st.loading = true
		}
		m.stores[ownerID] = st
	}
	m.mu.Unlock()

	if !ok && ownerID != 0 {
		_ = st.Load(ctx)
	}
	return st
}

// Release descarta o snapshot de um tenant (logout ou conta removida).
func (m *Manager) Release(ownerID uint) {
	m.mu.Lock()
	delete(m.stores, ownerID)
	m.mu.Unlock()
}
