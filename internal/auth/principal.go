// Package auth holds the per-request principal, the role gate and the
// role → landing page table.
package auth

import "github.com/Jacksonpirlo/sistemaEscolar/internal/model"

// Principal is the authenticated user of the current request. It is rebuilt
// from the database on every request.
type Principal struct {
	UsuarioID uint
	Correo    string
	Rol       model.TipoRol
}

// Es reports whether the principal has one of the given roles.
func (p *Principal) Es(roles ...model.TipoRol) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Rol == r {
			return true
		}
	}
	return false
}

// EsCoordinador is Es(model.RolCoordinador), for templates.
func (p *Principal) EsCoordinador() bool { return p.Es(model.RolCoordinador) }
