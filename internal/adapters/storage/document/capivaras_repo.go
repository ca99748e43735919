package document

import (
	"context"
	"errors"

	"capivaras-api/internal/domain/capivaras"
	"capivaras-api/internal/ports/storage"
)

// Collection es el nombre de la colección (y del archivo capivaras.json).
const Collection = "capivaras"

// CapivarasRepo implementa capivaras.Repository sobre cualquier DocumentStore.
type CapivarasRepo struct {
	store      storage.DocumentStore
	collection string
}

func NewCapivarasRepo(store storage.DocumentStore) *CapivarasRepo {
	return &CapivarasRepo{store: store, collection: Collection}
}

var _ capivaras.Repository = (*CapivarasRepo)(nil)

// Load trata la colección inexistente como vacía; cualquier otro error se propaga.
func (r *CapivarasRepo) Load(ctx context.Context) ([]capivaras.Capivara, error) {
	var items []capivaras.Capivara
	if err := r.store.Load(ctx, r.collection, &items); err != nil {
		if errors.Is(err, storage.ErrCollectionNotFound) {
			return []capivaras.Capivara{}, nil
		}
		return nil, err
	}
	if items == nil {
		// archivo con "null"
		items = []capivaras.Capivara{}
	}
	return items, nil
}

func (r *CapivarasRepo) Save(ctx context.Context, items []capivaras.Capivara) error {
	if items == nil {
		items = []capivaras.Capivara{}
	}
	return r.store.Save(ctx, r.collection, items)
}
