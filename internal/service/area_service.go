package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

type AreaService interface {
	Listar(ctx context.Context) ([]model.Area, error)
	Obtener(ctx context.Context, id uint) (*model.Area, error)
	Crear(ctx context.Context, form dto.AreaForm) (*model.Area, error)
	Actualizar(ctx context.Context, id uint, form dto.AreaForm) (*model.Area, error)
	Eliminar(ctx context.Context, id uint) error
}

type areaService struct {
	repo        repository.AreaRepository
	asignaturas repository.AsignaturaRepository
}

func NewAreaService(repo repository.AreaRepository, asignaturas repository.AsignaturaRepository) AreaService {
	return &areaService{repo: repo, asignaturas: asignaturas}
}

func (s *areaService) Listar(ctx context.Context) ([]model.Area, error) {
	return s.repo.Listar(ctx)
}

func (s *areaService) Obtener(ctx context.Context, id uint) (*model.Area, error) {
	a, err := s.repo.ObtenerPorID(ctx, id)
	return a, traducirNoEncontrado(err)
}

func (s *areaService) Crear(ctx context.Context, form dto.AreaForm) (*model.Area, error) {
	nombre, err := texto("nombre", form.Nombre)
	if err != nil {
		return nil, err
	}
	a := &model.Area{Nombre: nombre, Obligatoria: form.Obligatoria}
	if err := s.repo.Crear(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *areaService) Actualizar(ctx context.Context, id uint, form dto.AreaForm) (*model.Area, error) {
	a, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Nombre, err = texto("nombre", form.Nombre); err != nil {
		return nil, err
	}
	a.Obligatoria = form.Obligatoria
	if err := s.repo.Actualizar(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *areaService) Eliminar(ctx context.Context, id uint) error {
	return eliminar(ctx, s.repo, "el área", id,
		dependiente{"asignatura(s)", s.asignaturas.ContarPorArea})
}
