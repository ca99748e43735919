package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"capivaras-api/internal/ports/storage"
)

// CollectionsStore guarda cada colección como un documento JSONB (una fila por colección).
type CollectionsStore struct {
	db *sql.DB
}

func NewCollectionsStore(db *sql.DB) *CollectionsStore {
	return &CollectionsStore{db: db}
}

var _ storage.DocumentStore = (*CollectionsStore)(nil)

func (s *CollectionsStore) Load(ctx context.Context, collection string, dst any) error {
	collection = strings.TrimSpace(collection)

	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document
		FROM collections
		WHERE name = $1
	`, collection).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrCollectionNotFound
		}
		return fmt.Errorf("postgres: load %s: %w", collection, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("postgres: decode %s: %w", collection, err)
	}
	return nil
}

// Save reemplaza el documento completo (upsert).
func (s *CollectionsStore) Save(ctx context.Context, collection string, v any) error {
	collection = strings.TrimSpace(collection)

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("postgres: encode %s: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, document, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (name) DO UPDATE
		SET
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at
	`, collection, string(b))
	if err != nil {
		return fmt.Errorf("postgres: save %s: %w", collection, err)
	}
	return nil
}
