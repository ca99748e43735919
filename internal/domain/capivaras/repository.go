package capivaras

import "context"

// Repository carga y guarda la colección completa.
// Load devuelve la colección vacía si todavía no existe.
type Repository interface {
	Load(ctx context.Context) ([]Capivara, error)
	Save(ctx context.Context, items []Capivara) error
}
