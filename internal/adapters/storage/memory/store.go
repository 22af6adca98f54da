package memory

import (
	"sync"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/toys"
)

// Store guarda todas las tablas bajo un único lock, así los borrados en
// cascada (cat -> feedings, cat/toy -> asociaciones) son atómicos.
type Store struct {
	mu sync.RWMutex

	// seq da el orden de inserción.
	seq uint64

	accounts map[string]accounts.Account
	cats     map[string]catRow
	feedings map[string]feedingRow
	toys     map[string]toyRow

	// catToys[catID][toyID]
	catToys map[string]map[string]struct{}
}

type catRow struct {
	c   cats.Cat
	seq uint64
}

type feedingRow struct {
	f   feedings.Feeding
	seq uint64
}

type toyRow struct {
	t   toys.Toy
	seq uint64
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]accounts.Account),
		cats:     make(map[string]catRow),
		feedings: make(map[string]feedingRow),
		toys:     make(map[string]toyRow),
		catToys:  make(map[string]map[string]struct{}),
	}
}

// nextSeq requiere el lock de escritura tomado.
func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// deleteCatLocked borra el gato y sus dependientes. Requiere el lock.
func (s *Store) deleteCatLocked(id string) {
	delete(s.cats, id)
	delete(s.catToys, id)
	for fid, row := range s.feedings {
		if row.f.CatID == id {
			delete(s.feedings, fid)
		}
	}
}
