package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

type TemaService interface {
	Listar(ctx context.Context) ([]model.Tema, error)
	Obtener(ctx context.Context, id uint) (*model.Tema, error)
	Crear(ctx context.Context, form dto.TemaForm) (*model.Tema, error)
	Actualizar(ctx context.Context, id uint, form dto.TemaForm) (*model.Tema, error)
	Eliminar(ctx context.Context, id uint) error
}

type temaService struct {
	repo        repository.TemaRepository
	asignaturas repository.AsignaturaRepository
}

func NewTemaService(repo repository.TemaRepository, asignaturas repository.AsignaturaRepository) TemaService {
	return &temaService{repo: repo, asignaturas: asignaturas}
}

func (s *temaService) Listar(ctx context.Context) ([]model.Tema, error) {
	return s.repo.Listar(ctx)
}

func (s *temaService) Obtener(ctx context.Context, id uint) (*model.Tema, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	return t, traducirNoEncontrado(err)
}

func (s *temaService) aplicar(ctx context.Context, t *model.Tema, form dto.TemaForm) error {
	nombre, err := texto("nombre", form.Nombre)
	if err != nil {
		return err
	}
	if err := verificarPadre(ctx, s.asignaturas, "asignatura", form.AsignaturaID); err != nil {
		return err
	}
	t.Nombre = nombre
	t.AsignaturaID = form.AsignaturaID
	return nil
}

func (s *temaService) Crear(ctx context.Context, form dto.TemaForm) (*model.Tema, error) {
	t := &model.Tema{}
	if err := s.aplicar(ctx, t, form); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *temaService) Actualizar(ctx context.Context, id uint, form dto.TemaForm) (*model.Tema, error) {
	t, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.aplicar(ctx, t, form); err != nil {
		return nil, err
	}
	if err := s.repo.Actualizar(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Temas are leaves of the hierarchy: nothing blocks their deletion.
func (s *temaService) Eliminar(ctx context.Context, id uint) error {
	return eliminar(ctx, s.repo, "el tema", id)
}
