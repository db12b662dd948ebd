package auth

import (
	"testing"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAutorizar(t *testing.T) {
	coord := &Principal{UsuarioID: 1, Rol: model.RolCoordinador}
	docente := &Principal{UsuarioID: 2, Rol: model.RolDocente}

	assert.Equal(t, Permitido, Autorizar(coord, model.RolCoordinador))
	assert.Equal(t, DenegadoProhibido, Autorizar(docente, model.RolCoordinador))
	assert.Equal(t, DenegadoNoAutenticado, Autorizar(nil, model.RolCoordinador))
	assert.Equal(t, Permitido, Autorizar(docente, model.RolCoordinador, model.RolDocente))
	assert.Equal(t, DenegadoProhibido, Autorizar(docente), "no roles allowed")
}

func TestPanelDe(t *testing.T) {
	casos := map[string]string{
		"Coordinador Académico":        PanelCoordinador,
		"Docente":                      PanelDocente,
		"Estudiante":                   PanelEstudiante,
		"Acudiente":                    PanelAcudiente,
		"Padre de Familia o Acudiente": PanelAcudiente,
	}
	for nombre, want := range casos {
		tipo, err := model.ParseTipoRol(nombre)
		assert.NoError(t, err)
		got, ok := PanelDe(tipo)
		assert.True(t, ok)
		assert.Equal(t, want, got, nombre)
	}

	_, ok := PanelDe(model.TipoRol(42))
	assert.False(t, ok)
}

func TestPrincipalEs_Nil(t *testing.T) {
	var p *Principal
	assert.False(t, p.Es(model.RolCoordinador))
}
