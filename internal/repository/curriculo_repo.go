package repository

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"

	"gorm.io/gorm"
)

// ── Niveles ───────────────────────────────────────────────────────────────────

type NivelRepository interface {
	CRUDRepository[model.NivelEducativo]
}

func NewNivelRepository(db *gorm.DB) NivelRepository {
	return newCRUDRepository[model.NivelEducativo](db)
}

// ── Grados ────────────────────────────────────────────────────────────────────

type GradoRepository interface {
	CRUDRepository[model.Grado]
	ContarPorNivel(ctx context.Context, nivelID uint) (int64, error)
}

type gradoRepository struct{ *crudRepository[model.Grado] }

func NewGradoRepository(db *gorm.DB) GradoRepository {
	return &gradoRepository{newCRUDRepository[model.Grado](db, "Nivel")}
}

func (r *gradoRepository) ContarPorNivel(ctx context.Context, nivelID uint) (int64, error) {
	return r.contarDonde(ctx, "nivel_id", nivelID)
}

// ── Áreas ─────────────────────────────────────────────────────────────────────

type AreaRepository interface {
	CRUDRepository[model.Area]
}

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return newCRUDRepository[model.Area](db)
}

// ── Asignaturas ───────────────────────────────────────────────────────────────

type AsignaturaRepository interface {
	CRUDRepository[model.Asignatura]
	ContarPorGrado(ctx context.Context, gradoID uint) (int64, error)
	ContarPorArea(ctx context.Context, areaID uint) (int64, error)
}

type asignaturaRepository struct{ *crudRepository[model.Asignatura] }

func NewAsignaturaRepository(db *gorm.DB) AsignaturaRepository {
	return &asignaturaRepository{newCRUDRepository[model.Asignatura](db, "Grado", "Grado.Nivel", "Area")}
}

func (r *asignaturaRepository) ContarPorGrado(ctx context.Context, gradoID uint) (int64, error) {
	return r.contarDonde(ctx, "grado_id", gradoID)
}

func (r *asignaturaRepository) ContarPorArea(ctx context.Context, areaID uint) (int64, error) {
	return r.contarDonde(ctx, "area_id", areaID)
}

// ── Temas ─────────────────────────────────────────────────────────────────────

type TemaRepository interface {
	CRUDRepository[model.Tema]
	ContarPorAsignatura(ctx context.Context, asignaturaID uint) (int64, error)
}

type temaRepository struct{ *crudRepository[model.Tema] }

func NewTemaRepository(db *gorm.DB) TemaRepository {
	return &temaRepository{newCRUDRepository[model.Tema](db, "Asignatura", "Asignatura.Grado")}
}

func (r *temaRepository) ContarPorAsignatura(ctx context.Context, asignaturaID uint) (int64, error) {
	return r.contarDonde(ctx, "asignatura_id", asignaturaID)
}

// ── Logros ────────────────────────────────────────────────────────────────────

type LogroRepository interface {
	CRUDRepository[model.Logro]
	ContarPorAsignatura(ctx context.Context, asignaturaID uint) (int64, error)
}

type logroRepository struct{ *crudRepository[model.Logro] }

func NewLogroRepository(db *gorm.DB) LogroRepository {
	return &logroRepository{newCRUDRepository[model.Logro](db, "Asignatura", "Asignatura.Grado")}
}

func (r *logroRepository) ContarPorAsignatura(ctx context.Context, asignaturaID uint) (int64, error) {
	return r.contarDonde(ctx, "asignatura_id", asignaturaID)
}
