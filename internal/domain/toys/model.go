package toys

import "time"

// Toy es compartido entre todos los usuarios (no tiene dueño).
type Toy struct {
	ID    string
	Name  string
	Color string

	CreatedAt time.Time
	UpdatedAt time.Time
}
