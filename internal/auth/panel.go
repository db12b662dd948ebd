package auth

import "github.com/Jacksonpirlo/sistemaEscolar/internal/model"

// Landing pages per role.
const (
	PanelCoordinador = "/panel-coordinador/"
	PanelDocente     = "/panel-docente/"
	PanelEstudiante  = "/panel-estudiante/"
	PanelAcudiente   = "/panel-acudiente/"
)

var paneles = map[model.TipoRol]string{
	model.RolCoordinador: PanelCoordinador,
	model.RolDocente:     PanelDocente,
	model.RolEstudiante:  PanelEstudiante,
	model.RolAcudiente:   PanelAcudiente,
}

// PanelDe returns the path a user with role r lands on after login.
// ok is false only for values outside the TipoRol enumeration.
func PanelDe(r model.TipoRol) (path string, ok bool) {
	path, ok = paneles[r]
	return path, ok
}
