package toys

import (
	"context"
	"errors"
	"strings"
	"time"

	"cat-collector/internal/platform/validate"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("toy not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Name  string `form:"name" validate:"required,max=50"`
	Color string `form:"color" validate:"required,max=20"`
}

func (in *Input) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Color = strings.TrimSpace(in.Color)
}

func (s *Service) Create(ctx context.Context, in Input) (Toy, error) {
	in.normalize()
	if err := validate.Struct(in); err != nil {
		return Toy{}, err
	}

	now := s.now()
	t := Toy{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Toy{}, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (Toy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Toy{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Toy, error) {
	return s.repo.List(ctx)
}

// Update no filtra por dueño: cualquier usuario autenticado puede editar
// cualquier toy.
func (s *Service) Update(ctx context.Context, id string, in Input) (Toy, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Toy{}, err
	}

	in.normalize()
	if err := validate.Struct(in); err != nil {
		return Toy{}, err
	}

	current.Name = in.Name
	current.Color = in.Color
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Toy{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, t.ID)
}

// Exists implementa cats.ToyChecker.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
