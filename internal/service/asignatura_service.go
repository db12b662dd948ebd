package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

type AsignaturaService interface {
	Listar(ctx context.Context) ([]model.Asignatura, error)
	Obtener(ctx context.Context, id uint) (*model.Asignatura, error)
	Crear(ctx context.Context, form dto.AsignaturaForm) (*model.Asignatura, error)
	Actualizar(ctx context.Context, id uint, form dto.AsignaturaForm) (*model.Asignatura, error)
	Eliminar(ctx context.Context, id uint) error
}

type asignaturaService struct {
	repo   repository.AsignaturaRepository
	grados repository.GradoRepository
	areas  repository.AreaRepository
	temas  repository.TemaRepository
	logros repository.LogroRepository
}

func NewAsignaturaService(
	repo repository.AsignaturaRepository,
	grados repository.GradoRepository,
	areas repository.AreaRepository,
	temas repository.TemaRepository,
	logros repository.LogroRepository,
) AsignaturaService {
	return &asignaturaService{repo: repo, grados: grados, areas: areas, temas: temas, logros: logros}
}

func (s *asignaturaService) Listar(ctx context.Context) ([]model.Asignatura, error) {
	return s.repo.Listar(ctx)
}

func (s *asignaturaService) Obtener(ctx context.Context, id uint) (*model.Asignatura, error) {
	a, err := s.repo.ObtenerPorID(ctx, id)
	return a, traducirNoEncontrado(err)
}

func (s *asignaturaService) aplicar(ctx context.Context, a *model.Asignatura, form dto.AsignaturaForm) error {
	nombre, err := texto("nombre", form.Nombre)
	if err != nil {
		return err
	}
	if err := verificarPadre(ctx, s.grados, "grado", form.GradoID); err != nil {
		return err
	}
	if err := verificarPadre(ctx, s.areas, "area", form.AreaID); err != nil {
		return err
	}
	a.Nombre = nombre
	a.GradoID = form.GradoID
	a.AreaID = form.AreaID
	return nil
}

func (s *asignaturaService) Crear(ctx context.Context, form dto.AsignaturaForm) (*model.Asignatura, error) {
	a := &model.Asignatura{}
	if err := s.aplicar(ctx, a, form); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *asignaturaService) Actualizar(ctx context.Context, id uint, form dto.AsignaturaForm) (*model.Asignatura, error) {
	a, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.aplicar(ctx, a, form); err != nil {
		return nil, err
	}
	if err := s.repo.Actualizar(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *asignaturaService) Eliminar(ctx context.Context, id uint) error {
	return eliminar(ctx, s.repo, "la asignatura", id,
		dependiente{"tema(s)", s.temas.ContarPorAsignatura},
		dependiente{"logro(s)", s.logros.ContarPorAsignatura})
}
