package cats

import (
	"context"
	"errors"
	"strings"
	"time"

	"cat-collector/internal/platform/validate"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound cubre tanto "no existe" como "no es tuyo".
	ErrNotFound = errors.New("cat not found")
)

// ToyChecker lo implementa toys.Service; evita que cats dependa de toys.
type ToyChecker interface {
	Exists(ctx context.Context, toyID string) (bool, error)
}

type Service struct {
	repo Repository
	toys ToyChecker
	now  func() time.Time
}

func NewService(repo Repository, toys ToyChecker) *Service {
	return &Service{
		repo: repo,
		toys: toys,
		now:  time.Now,
	}
}

// MaxAge es el tope de una columna INTEGER en Postgres.
const MaxAge = 2147483647

type CreateInput struct {
	Name        string `form:"name" validate:"required,max=100"`
	Breed       string `form:"breed" validate:"required,max=100"`
	Description string `form:"description" validate:"required,max=250"`
	Age         int    `form:"age" validate:"gte=0,lte=2147483647"`
}

// UpdateInput no incluye Name: el nombre solo se fija al crear.
type UpdateInput struct {
	Breed       string `form:"breed" validate:"required,max=100"`
	Description string `form:"description" validate:"required,max=250"`
	Age         int    `form:"age" validate:"gte=0,lte=2147483647"`
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Cat, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Cat{}, ErrInvalidInput
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Description = strings.TrimSpace(in.Description)
	if err := validate.Struct(in); err != nil {
		return Cat{}, err
	}

	now := s.now()
	c := Cat{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        in.Name,
		Breed:       in.Breed,
		Description: in.Description,
		Age:         in.Age,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

// Get devuelve el gato solo si pertenece a ownerUserID.
func (s *Service) Get(ctx context.Context, catID, ownerUserID string) (Cat, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" || strings.TrimSpace(ownerUserID) == "" {
		return Cat{}, ErrNotFound
	}

	c, err := s.repo.GetByID(ctx, catID)
	if err != nil {
		return Cat{}, err
	}
	if c.OwnerUserID != ownerUserID {
		return Cat{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Update(ctx context.Context, catID, ownerUserID string, in UpdateInput) (Cat, error) {
	current, err := s.Get(ctx, catID, ownerUserID)
	if err != nil {
		return Cat{}, err
	}

	in.Breed = strings.TrimSpace(in.Breed)
	in.Description = strings.TrimSpace(in.Description)
	if err := validate.Struct(in); err != nil {
		return Cat{}, err
	}

	current.Breed = in.Breed
	current.Description = in.Description
	current.Age = in.Age
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Cat{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, catID, ownerUserID string) error {
	c, err := s.Get(ctx, catID, ownerUserID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

func (s *Service) AddToy(ctx context.Context, catID, ownerUserID, toyID string) error {
	c, err := s.Get(ctx, catID, ownerUserID)
	if err != nil {
		return err
	}
	if err := s.checkToy(ctx, toyID); err != nil {
		return err
	}
	return s.repo.AddToy(ctx, c.ID, toyID)
}

func (s *Service) RemoveToy(ctx context.Context, catID, ownerUserID, toyID string) error {
	c, err := s.Get(ctx, catID, ownerUserID)
	if err != nil {
		return err
	}
	if err := s.checkToy(ctx, toyID); err != nil {
		return err
	}
	return s.repo.RemoveToy(ctx, c.ID, toyID)
}

// ToyIDs no filtra por dueño; llamar después de Get.
func (s *Service) ToyIDs(ctx context.Context, catID string) ([]string, error) {
	return s.repo.ListToyIDs(ctx, catID)
}

func (s *Service) checkToy(ctx context.Context, toyID string) error {
	if strings.TrimSpace(toyID) == "" || s.toys == nil {
		return ErrNotFound
	}
	ok, err := s.toys.Exists(ctx, toyID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
