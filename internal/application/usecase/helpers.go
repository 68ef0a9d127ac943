package usecase

import (
	"strings"

	"github.com/jhoicas/despachosys-api/internal/domain"
)

// setString asigna *src recortado si src no es nil.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// setRef asigna una referencia opcional: "" la limpia.
func setRef(dst **string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = &v
		return
	}
	*dst = nil
}

// boolOr devuelve *b o def.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// found convierte el (nil, nil) de los repositorios en domain.ErrNotFound.
func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}
