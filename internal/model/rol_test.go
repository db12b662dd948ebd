package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTipoRol(t *testing.T) {
	casos := map[string]TipoRol{
		"Coordinador Académico":        RolCoordinador,
		"Docente":                      RolDocente,
		"Estudiante":                   RolEstudiante,
		"Acudiente":                    RolAcudiente,
		"Padre de Familia o Acudiente": RolAcudiente,
	}
	for nombre, esperado := range casos {
		got, err := ParseTipoRol(nombre)
		require.NoError(t, err, nombre)
		assert.Equal(t, esperado, got, nombre)
	}
}

func TestParseTipoRol_Desconocido(t *testing.T) {
	for _, nombre := range []string{"", "Rector", "coordinador académico", "Docente "} {
		_, err := ParseTipoRol(nombre)
		assert.ErrorIs(t, err, ErrRolDesconocido, nombre)
	}
}

func TestNombresRoles_SonParseables(t *testing.T) {
	for _, nombre := range NombresRoles() {
		tipo, err := ParseTipoRol(nombre)
		require.NoError(t, err)
		assert.Equal(t, nombre, tipo.String())
	}
}
