package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"capivaras-api/internal/ports/storage"
)

type doc struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func TestStore_Load_MissingFile(t *testing.T) {
	s := NewStore(t.TempDir())

	var out []doc
	err := s.Load(context.Background(), "capivaras", &out)
	if !errors.Is(err, storage.ErrCollectionNotFound) {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestStore_Load_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "capivaras.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewStore(dir)

	var out []doc
	err := s.Load(context.Background(), "capivaras", &out)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Is(err, storage.ErrCollectionNotFound) {
		t.Fatalf("corrupt file must not look like a missing collection")
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "dados")) // dir creado por Save

	in := []doc{{ID: "b", Nome: "B"}, {ID: "a", Nome: "A"}}
	if err := s.Save(context.Background(), "capivaras", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []doc
	if err := s.Load(context.Background(), "capivaras", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestStore_Save_PrettyPrintedAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := s.Save(context.Background(), "capivaras", []doc{{ID: "a", Nome: "A"}, {ID: "b", Nome: "B"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(context.Background(), "capivaras", []doc{{ID: "c", Nome: "C"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "capivaras.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "[\n  {\n    \"id\": \"c\",\n    \"nome\": \"C\"\n  }\n]"
	if string(raw) != want {
		t.Fatalf("unexpected file content:\n%s", raw)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the collection file, got %d entries", len(entries))
	}
}

func TestStore_Save_FileIsWorldReadable(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := s.Save(context.Background(), "capivaras", []doc{{ID: "a", Nome: "A"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(s.Path("capivaras"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Fatalf("expected 0644, got %o", perm)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Save(ctx, "capivaras", []doc{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
