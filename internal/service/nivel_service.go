package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

// NivelService defines business operations for educational levels.
type NivelService interface {
	Listar(ctx context.Context) ([]model.NivelEducativo, error)
	Obtener(ctx context.Context, id uint) (*model.NivelEducativo, error)
	Crear(ctx context.Context, form dto.NivelForm) (*model.NivelEducativo, error)
	Actualizar(ctx context.Context, id uint, form dto.NivelForm) (*model.NivelEducativo, error)
	Eliminar(ctx context.Context, id uint) error
}

type nivelService struct {
	repo   repository.NivelRepository
	grados repository.GradoRepository
}

func NewNivelService(repo repository.NivelRepository, grados repository.GradoRepository) NivelService {
	return &nivelService{repo: repo, grados: grados}
}

func (s *nivelService) Listar(ctx context.Context) ([]model.NivelEducativo, error) {
	return s.repo.Listar(ctx)
}

func (s *nivelService) Obtener(ctx context.Context, id uint) (*model.NivelEducativo, error) {
	n, err := s.repo.ObtenerPorID(ctx, id)
	return n, traducirNoEncontrado(err)
}

func (s *nivelService) Crear(ctx context.Context, form dto.NivelForm) (*model.NivelEducativo, error) {
	nombre, err := texto("nombre", form.Nombre)
	if err != nil {
		return nil, err
	}
	n := &model.NivelEducativo{Nombre: nombre}
	if err := s.repo.Crear(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *nivelService) Actualizar(ctx context.Context, id uint, form dto.NivelForm) (*model.NivelEducativo, error) {
	n, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Nombre, err = texto("nombre", form.Nombre); err != nil {
		return nil, err
	}
	if err := s.repo.Actualizar(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *nivelService) Eliminar(ctx context.Context, id uint) error {
	return eliminar(ctx, s.repo, "el nivel educativo", id,
		dependiente{"grado(s)", s.grados.ContarPorNivel})
}
