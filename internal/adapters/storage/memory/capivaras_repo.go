package memory

import (
	"context"
	"sync"

	"capivaras-api/internal/domain/capivaras"
)

type capivarasRepo struct {
	mu    sync.RWMutex
	items []capivaras.Capivara
}

// NewCapivarasRepo arranca con una copia de seed (puede ser nil).
func NewCapivarasRepo(seed []capivaras.Capivara) capivaras.Repository {
	return &capivarasRepo{
		items: append([]capivaras.Capivara{}, seed...),
	}
}

// Load devuelve una copia: el caller puede mutarla sin afectar al repo hasta Save.
func (r *capivarasRepo) Load(ctx context.Context) ([]capivaras.Capivara, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]capivaras.Capivara{}, r.items...), nil
}

func (r *capivarasRepo) Save(ctx context.Context, items []capivaras.Capivara) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]capivaras.Capivara{}, items...)
	return nil
}
