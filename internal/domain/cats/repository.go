package cats

import "context"

type Repository interface {
	Create(ctx context.Context, c Cat) error
	Update(ctx context.Context, c Cat) error
	// Delete borra el gato junto con sus feedings y asociaciones a toys.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Cat, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error)

	AddToy(ctx context.Context, catID, toyID string) error
	RemoveToy(ctx context.Context, catID, toyID string) error
	ListToyIDs(ctx context.Context, catID string) ([]string, error)
}
