package service

import (
	"context"
	"strings"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
)

const msgCampoObligatorio = "Este campo es obligatorio."

type existencia interface {
	Existe(ctx context.Context, id uint) (bool, error)
}

// verificarPadre returns a field error when id does not reference a row of repo.
func verificarPadre(ctx context.Context, repo existencia, campo string, id uint) error {
	if id == 0 {
		return apperror.Campo(campo, msgOpcionInvalida)
	}
	ok, err := repo.Existe(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.Campo(campo, msgOpcionInvalida)
	}
	return nil
}

// texto trims v and rejects it when blank.
func texto(campo, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperror.Campo(campo, msgCampoObligatorio)
	}
	return v, nil
}

// dependiente counts the children of a record that block its deletion.
type dependiente struct {
	nombre string
	contar func(ctx context.Context, id uint) (int64, error)
}

// verificarEliminable refuses the delete when any dependiente has rows.
func verificarEliminable(ctx context.Context, registro string, id uint, deps ...dependiente) error {
	for _, d := range deps {
		n, err := d.contar(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return &DependientesError{Registro: registro, Dependientes: d.nombre, Cantidad: n}
		}
	}
	return nil
}

// eliminar runs the lookup, the dependency check and the delete in order.
func eliminar(ctx context.Context, repo interface {
	existencia
	Eliminar(ctx context.Context, id uint) error
}, registro string, id uint, deps ...dependiente) error {
	ok, err := repo.Existe(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoEncontrado
	}
	if err := verificarEliminable(ctx, registro, id, deps...); err != nil {
		return err
	}
	return traducirNoEncontrado(repo.Eliminar(ctx, id))
}
