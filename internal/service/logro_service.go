package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

type LogroService interface {
	Listar(ctx context.Context) ([]model.Logro, error)
	Obtener(ctx context.Context, id uint) (*model.Logro, error)
	Crear(ctx context.Context, form dto.LogroForm) (*model.Logro, error)
	Actualizar(ctx context.Context, id uint, form dto.LogroForm) (*model.Logro, error)
	Eliminar(ctx context.Context, id uint) error
}

type logroService struct {
	repo        repository.LogroRepository
	asignaturas repository.AsignaturaRepository
}

func NewLogroService(repo repository.LogroRepository, asignaturas repository.AsignaturaRepository) LogroService {
	return &logroService{repo: repo, asignaturas: asignaturas}
}

func (s *logroService) Listar(ctx context.Context) ([]model.Logro, error) {
	return s.repo.Listar(ctx)
}

func (s *logroService) Obtener(ctx context.Context, id uint) (*model.Logro, error) {
	l, err := s.repo.ObtenerPorID(ctx, id)
	return l, traducirNoEncontrado(err)
}

func (s *logroService) aplicar(ctx context.Context, l *model.Logro, form dto.LogroForm) error {
	desc, err := texto("descripcion", form.Descripcion)
	if err != nil {
		return err
	}
	if err := verificarPadre(ctx, s.asignaturas, "asignatura", form.AsignaturaID); err != nil {
		return err
	}
	l.Descripcion = desc
	l.AsignaturaID = form.AsignaturaID
	return nil
}

func (s *logroService) Crear(ctx context.Context, form dto.LogroForm) (*model.Logro, error) {
	l := &model.Logro{}
	if err := s.aplicar(ctx, l, form); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *logroService) Actualizar(ctx context.Context, id uint, form dto.LogroForm) (*model.Logro, error) {
	l, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.aplicar(ctx, l, form); err != nil {
		return nil, err
	}
	if err := s.repo.Actualizar(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *logroService) Eliminar(ctx context.Context, id uint) error {
	return eliminar(ctx, s.repo, "el logro", id)
}
