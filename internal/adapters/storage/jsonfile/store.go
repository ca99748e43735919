package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"capivaras-api/internal/ports/storage"
)

// Store guarda cada colección en <dir>/<colección>.json, con indentación de 2 espacios.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

var _ storage.DocumentStore = (*Store)(nil)

// Path devuelve la ruta del archivo de una colección.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) Load(ctx context.Context, collection string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(collection)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrCollectionNotFound
		}
		return fmt.Errorf("jsonfile: read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("jsonfile: decode %s: %w", path, err)
	}
	return nil
}

// Save escribe a un temporal en el mismo directorio y luego hace rename,
// así nunca queda un archivo a medio escribir.
func (s *Store) Save(ctx context.Context, collection string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode %s: %w", collection, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: mkdir %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op después del rename

	// CreateTemp crea con 0600; el archivo final queda legible como uno creado normalmente.
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("jsonfile: chmod %s: %w", tmpName, err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("jsonfile: write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("jsonfile: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile: close %s: %w", tmpName, err)
	}

	path := s.Path(collection)
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("jsonfile: rename %s: %w", path, err)
	}
	return nil
}
