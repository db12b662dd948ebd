package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

type GradoService interface {
	Listar(ctx context.Context) ([]model.Grado, error)
	Obtener(ctx context.Context, id uint) (*model.Grado, error)
	Crear(ctx context.Context, form dto.GradoForm) (*model.Grado, error)
	Actualizar(ctx context.Context, id uint, form dto.GradoForm) (*model.Grado, error)
	Eliminar(ctx context.Context, id uint) error
}

type gradoService struct {
	repo        repository.GradoRepository
	niveles     repository.NivelRepository
	asignaturas repository.AsignaturaRepository
}

func NewGradoService(repo repository.GradoRepository, niveles repository.NivelRepository, asignaturas repository.AsignaturaRepository) GradoService {
	return &gradoService{repo: repo, niveles: niveles, asignaturas: asignaturas}
}

func (s *gradoService) Listar(ctx context.Context) ([]model.Grado, error) {
	return s.repo.Listar(ctx)
}

func (s *gradoService) Obtener(ctx context.Context, id uint) (*model.Grado, error) {
	g, err := s.repo.ObtenerPorID(ctx, id)
	return g, traducirNoEncontrado(err)
}

// aplicar validates form and copies it onto g.
func (s *gradoService) aplicar(ctx context.Context, g *model.Grado, form dto.GradoForm) error {
	nombre, err := texto("nombre", form.Nombre)
	if err != nil {
		return err
	}
	if err := verificarPadre(ctx, s.niveles, "nivel", form.NivelID); err != nil {
		return err
	}
	g.Nombre = nombre
	g.NivelID = form.NivelID
	return nil
}

func (s *gradoService) Crear(ctx context.Context, form dto.GradoForm) (*model.Grado, error) {
	g := &model.Grado{}
	if err := s.aplicar(ctx, g, form); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gradoService) Actualizar(ctx context.Context, id uint, form dto.GradoForm) (*model.Grado, error) {
	g, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.aplicar(ctx, g, form); err != nil {
		return nil, err
	}
	if err := s.repo.Actualizar(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gradoService) Eliminar(ctx context.Context, id uint) error {
	return eliminar(ctx, s.repo, "el grado", id,
		dependiente{"asignatura(s)", s.asignaturas.ContarPorGrado})
}
