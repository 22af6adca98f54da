package toys

import "context"

type Repository interface {
	Create(ctx context.Context, t Toy) error
	Update(ctx context.Context, t Toy) error
	// Delete también quita el toy de todos los gatos que lo tenían.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Toy, error)
	List(ctx context.Context) ([]Toy, error)
}
