package model

import (
	"errors"
	"time"
)

// Rol stores the role names users pick at registration.
type Rol struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"type:varchar(60);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Rol) TableName() string { return "roles" }

// TipoRol is the closed set of roles the application knows how to route.
type TipoRol int

const (
	RolCoordinador TipoRol = iota + 1
	RolDocente
	RolEstudiante
	RolAcudiente
)

// Canonical role names as seeded in the roles table.
const (
	NombreCoordinador = "Coordinador Académico"
	NombreDocente     = "Docente"
	NombreEstudiante  = "Estudiante"
	NombreAcudiente   = "Padre de Familia o Acudiente"
)

var ErrRolDesconocido = errors.New("rol desconocido")

var tiposPorNombre = map[string]TipoRol{
	NombreCoordinador: RolCoordinador,
	NombreDocente:     RolDocente,
	NombreEstudiante:  RolEstudiante,
	NombreAcudiente:   RolAcudiente,
	"Acudiente":       RolAcudiente,
}

// ParseTipoRol maps a stored role name to its TipoRol.
func ParseTipoRol(nombre string) (TipoRol, error) {
	t, ok := tiposPorNombre[nombre]
	if !ok {
		return 0, ErrRolDesconocido
	}
	return t, nil
}

func (t TipoRol) String() string {
	switch t {
	case RolCoordinador:
		return NombreCoordinador
	case RolDocente:
		return NombreDocente
	case RolEstudiante:
		return NombreEstudiante
	case RolAcudiente:
		return NombreAcudiente
	}
	return "desconocido"
}

// NombresRoles lists the role rows seeded on startup.
func NombresRoles() []string {
	return []string{NombreCoordinador, NombreDocente, NombreEstudiante, NombreAcudiente}
}
