package auth

import "github.com/Jacksonpirlo/sistemaEscolar/internal/model"

// Decision is the outcome of the role gate.
type Decision int

const (
	Permitido Decision = iota
	DenegadoNoAutenticado
	DenegadoProhibido
)

func (d Decision) String() string {
	switch d {
	case Permitido:
		return "permitido"
	case DenegadoNoAutenticado:
		return "no_autenticado"
	case DenegadoProhibido:
		return "prohibido"
	}
	return "desconocido"
}

// Autorizar decides whether p may access a resource reserved to permitidos.
func Autorizar(p *Principal, permitidos ...model.TipoRol) Decision {
	if p == nil {
		return DenegadoNoAutenticado
	}
	if !p.Es(permitidos...) {
		return DenegadoProhibido
	}
	return Permitido
}
