package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNoEncontrado is returned when an id does not match any record.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrTieneDependientes is matched by every *DependientesError.
	ErrTieneDependientes = errors.New("el registro tiene dependientes")

	ErrUsuarioNoEncontrado = errors.New("Usuario no encontrado")
	ErrPasswordIncorrecta  = errors.New("Contraseña incorrecta")
	ErrSesionInvalida      = errors.New("sesión inválida o expirada")
)

// RolNoReconocidoError is returned by Login when the stored role name is
// outside the known set.
type RolNoReconocidoError struct {
	Nombre string
}

func (e *RolNoReconocidoError) Error() string {
	return fmt.Sprintf("Rol no reconocido: %s", e.Nombre)
}

// DependientesError refuses a delete that would orphan child records.
type DependientesError struct {
	Registro     string // e.g. "el nivel educativo"
	Dependientes string // e.g. "grado(s)"
	Cantidad     int64
}

func (e *DependientesError) Error() string {
	return fmt.Sprintf("No se puede eliminar %s: tiene %d %s asociados.", e.Registro, e.Cantidad, e.Dependientes)
}

func (e *DependientesError) Is(target error) bool { return target == ErrTieneDependientes }

func traducirNoEncontrado(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	return err
}
