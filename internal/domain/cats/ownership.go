package cats

import (
	"context"
	"errors"
)

// OwnerOf expone el ownerUserID de un gato (ok=false si no existe).
// Se usa para evitar ciclos de imports entre módulos (cats <-> feedings).
func (s *Service) OwnerOf(ctx context.Context, catID string) (string, bool, error) {
	c, err := s.repo.GetByID(ctx, catID)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return c.OwnerUserID, true, nil
}
