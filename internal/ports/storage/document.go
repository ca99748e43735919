package storage

import (
	"context"
	"errors"
)

// ErrCollectionNotFound indica que la colección todavía no fue persistida.
var ErrCollectionNotFound = errors.New("collection not found")

// DocumentStore guarda colecciones completas como un único documento JSON.
// Load decodifica el documento en dst; Save sobrescribe el documento entero.
type DocumentStore interface {
	Load(ctx context.Context, collection string, dst any) error
	Save(ctx context.Context, collection string, v any) error
}
