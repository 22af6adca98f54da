package cats

import "time"

// Cat es el registro principal: pertenece a un único dueño, que se fija al
// crear y no cambia nunca.
type Cat struct {
	ID          string
	OwnerUserID string

	Name        string
	Breed       string
	Description string
	Age         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsKitten: edad 0 es válida, solo cambia cómo se muestra.
func (c Cat) IsKitten() bool {
	return c.Age == 0
}
