package capivaras

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("capivara not found")
)

// IDLength es el largo del ID corto (prefijo del UUID canónico).
const IDLength = 8

type Service struct {
	repo  Repository
	newID func() string

	// mu serializa las mutaciones: se toma antes de Load y se suelta después de Save.
	mu sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: newShortID,
	}
}

func newShortID() string {
	return uuid.NewString()[:IDLength]
}

type CreateInput struct {
	Nome           string
	DataNascimento string
	HabitatID      string
}

// UpdateInput: string vacío = conservar el valor actual.
type UpdateInput struct {
	Nome           string
	DataNascimento string
	HabitatID      string
}

func (s *Service) List(ctx context.Context) ([]Capivara, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load capivaras: %w", err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Capivara, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return Capivara{}, fmt.Errorf("load capivaras: %w", err)
	}

	i := indexOf(items, id)
	if i < 0 {
		return Capivara{}, ErrNotFound
	}
	return items[i], nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Capivara, error) {
	if in.Nome == "" || in.DataNascimento == "" || in.HabitatID == "" {
		return Capivara{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		return Capivara{}, fmt.Errorf("load capivaras: %w", err)
	}

	c := Capivara{
		ID:             s.newID(),
		Nome:           in.Nome,
		DataNascimento: in.DataNascimento,
		HabitatID:      in.HabitatID,
	}
	items = append(items, c)

	if err := s.repo.Save(ctx, items); err != nil {
		return Capivara{}, fmt.Errorf("save capivaras: %w", err)
	}
	return c, nil
}

// Update hace merge campo a campo y mantiene la posición del registro.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Capivara, error) {
	if strings.TrimSpace(id) == "" {
		return Capivara{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		return Capivara{}, fmt.Errorf("load capivaras: %w", err)
	}

	i := indexOf(items, id)
	if i < 0 {
		return Capivara{}, ErrNotFound
	}

	c := items[i]
	if in.Nome != "" {
		c.Nome = in.Nome
	}
	if in.DataNascimento != "" {
		c.DataNascimento = in.DataNascimento
	}
	if in.HabitatID != "" {
		c.HabitatID = in.HabitatID
	}
	items[i] = c

	if err := s.repo.Save(ctx, items); err != nil {
		return Capivara{}, fmt.Errorf("save capivaras: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load capivaras: %w", err)
	}

	i := indexOf(items, id)
	if i < 0 {
		return ErrNotFound
	}
	items = append(items[:i], items[i+1:]...)

	if err := s.repo.Save(ctx, items); err != nil {
		return fmt.Errorf("save capivaras: %w", err)
	}
	return nil
}
