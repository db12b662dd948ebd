package service

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
)

// PlanService assembles the full curriculum tree for the printable plan.
type PlanService interface {
	Construir(ctx context.Context) (dto.PlanEstudios, error)
}

type planService struct {
	niveles     repository.NivelRepository
	grados      repository.GradoRepository
	asignaturas repository.AsignaturaRepository
	temas       repository.TemaRepository
	logros      repository.LogroRepository
}

func NewPlanService(
	niveles repository.NivelRepository,
	grados repository.GradoRepository,
	asignaturas repository.AsignaturaRepository,
	temas repository.TemaRepository,
	logros repository.LogroRepository,
) PlanService {
	return &planService{niveles: niveles, grados: grados, asignaturas: asignaturas, temas: temas, logros: logros}
}

// Construir keeps every list in id order, which is creation order.
func (s *planService) Construir(ctx context.Context) (dto.PlanEstudios, error) {
	var plan dto.PlanEstudios

	niveles, err := s.niveles.Listar(ctx)
	if err != nil {
		return plan, err
	}
	grados, err := s.grados.Listar(ctx)
	if err != nil {
		return plan, err
	}
	asignaturas, err := s.asignaturas.Listar(ctx)
	if err != nil {
		return plan, err
	}
	temas, err := s.temas.Listar(ctx)
	if err != nil {
		return plan, err
	}
	logros, err := s.logros.Listar(ctx)
	if err != nil {
		return plan, err
	}

	temasPorAsig := make(map[uint][]string)
	for _, t := range temas {
		temasPorAsig[t.AsignaturaID] = append(temasPorAsig[t.AsignaturaID], t.Nombre)
	}
	logrosPorAsig := make(map[uint][]string)
	for _, l := range logros {
		logrosPorAsig[l.AsignaturaID] = append(logrosPorAsig[l.AsignaturaID], l.Descripcion)
	}
	asigPorGrado := make(map[uint][]dto.PlanAsignatura)
	for _, a := range asignaturas {
		asigPorGrado[a.GradoID] = append(asigPorGrado[a.GradoID], dto.PlanAsignatura{
			Nombre:      a.Nombre,
			Area:        a.Area.Nombre,
			Obligatoria: a.Area.Obligatoria,
			Temas:       temasPorAsig[a.ID],
			Logros:      logrosPorAsig[a.ID],
		})
	}
	gradosPorNivel := make(map[uint][]dto.PlanGrado)
	for _, g := range grados {
		gradosPorNivel[g.NivelID] = append(gradosPorNivel[g.NivelID], dto.PlanGrado{
			Nombre:      g.Nombre,
			Asignaturas: asigPorGrado[g.ID],
		})
	}

	plan.Niveles = make([]dto.PlanNivel, 0, len(niveles))
	for _, n := range niveles {
		plan.Niveles = append(plan.Niveles, dto.PlanNivel{Nombre: n.Nombre, Grados: gradosPorNivel[n.ID]})
	}
	return plan, nil
}
