package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseID valida que id sea un UUID y lo devuelve en forma canónica (minúsculas, con
// guiones). field identifica el campo en el mensaje de error.
func ParseID(field, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: %s requerido", ErrInvalidInput, field)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %s debe ser un UUID", ErrInvalidInput, field)
	}
	return u.String(), nil
}
