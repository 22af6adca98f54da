package feedings

import (
	"context"
	"errors"
	"strings"
	"time"

	"cat-collector/internal/platform/validate"

	"github.com/google/uuid"
)

var (
	// ErrNotFound: el gato no existe o no es del usuario.
	ErrNotFound = errors.New("cat not found")
)

// CatOwnership lo implementa cats.Service (OwnerOf).
type CatOwnership interface {
	OwnerOf(ctx context.Context, catID string) (owner string, ok bool, err error)
}

type Service struct {
	repo Repository
	cats CatOwnership
	now  func() time.Time
}

func NewService(repo Repository, cats CatOwnership) *Service {
	return &Service{
		repo: repo,
		cats: cats,
		now:  time.Now,
	}
}

// AddInput llega del formulario; Date en formato YYYY-MM-DD.
type AddInput struct {
	Date string `form:"date" validate:"required"`
	Meal Meal   `form:"meal" validate:"oneof=B L D"`
}

// Add registra una comida para un gato del usuario. Si el gato no es suyo
// devuelve ErrNotFound sin persistir nada.
func (s *Service) Add(ctx context.Context, catID, ownerUserID string, in AddInput) (Feeding, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" || strings.TrimSpace(ownerUserID) == "" {
		return Feeding{}, ErrNotFound
	}

	owner, ok, err := s.cats.OwnerOf(ctx, catID)
	if err != nil {
		return Feeding{}, err
	}
	if !ok || owner != ownerUserID {
		return Feeding{}, ErrNotFound
	}

	in.Date = strings.TrimSpace(in.Date)
	if in.Meal == "" {
		in.Meal = MealBreakfast
	}
	if err := validate.Struct(in); err != nil {
		return Feeding{}, err
	}

	day, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return Feeding{}, validate.FieldErrors{"date": "Enter a valid date."}
	}

	f := Feeding{
		ID:        uuid.NewString(),
		CatID:     catID,
		Date:      day.UTC(),
		Meal:      in.Meal,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

// ListByCat no valida dueño: el caller ya resolvió el gato con cats.Service.Get.
func (s *Service) ListByCat(ctx context.Context, catID string) ([]Feeding, error) {
	return s.repo.ListByCat(ctx, catID)
}
