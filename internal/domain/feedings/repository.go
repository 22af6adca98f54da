package feedings

import "context"

type Repository interface {
	Create(ctx context.Context, f Feeding) error
	// ListByCat ordena por fecha desc; a igual fecha, por orden de inserción.
	ListByCat(ctx context.Context, catID string) ([]Feeding, error)
}
