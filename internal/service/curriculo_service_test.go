package service_test

import (
	"context"
	"testing"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type curriculo struct {
	niveles     service.NivelService
	grados      service.GradoService
	areas       service.AreaService
	asignaturas service.AsignaturaService
	temas       service.TemaService
	logros      service.LogroService
	plan        service.PlanService
}

func newCurriculo(t *testing.T) *curriculo {
	t.Helper()
	db, err := infra.NewDatabase("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	nivRepo := repository.NewNivelRepository(db)
	graRepo := repository.NewGradoRepository(db)
	areRepo := repository.NewAreaRepository(db)
	asiRepo := repository.NewAsignaturaRepository(db)
	temRepo := repository.NewTemaRepository(db)
	logRepo := repository.NewLogroRepository(db)

	return &curriculo{
		niveles:     service.NewNivelService(nivRepo, graRepo),
		grados:      service.NewGradoService(graRepo, nivRepo, asiRepo),
		areas:       service.NewAreaService(areRepo, asiRepo),
		asignaturas: service.NewAsignaturaService(asiRepo, graRepo, areRepo, temRepo, logRepo),
		temas:       service.NewTemaService(temRepo, asiRepo),
		logros:      service.NewLogroService(logRepo, asiRepo),
		plan:        service.NewPlanService(nivRepo, graRepo, asiRepo, temRepo, logRepo),
	}
}

// ── Niveles ───────────────────────────────────────────────────────────────────

func TestNivel_CrearListarActualizarEliminar(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()

	n, err := c.niveles.Crear(ctx, dto.NivelForm{Nombre: "  Preescolar "})
	require.NoError(t, err)
	assert.Equal(t, "Preescolar", n.Nombre)

	_, err = c.niveles.Actualizar(ctx, n.ID, dto.NivelForm{Nombre: "Transición"})
	require.NoError(t, err)

	list, err := c.niveles.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Transición", list[0].Nombre)

	require.NoError(t, c.niveles.Eliminar(ctx, n.ID))
	list, err = c.niveles.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNivel_NombreEnBlanco(t *testing.T) {
	c := newCurriculo(t)

	_, err := c.niveles.Crear(context.Background(), dto.NivelForm{Nombre: "   "})
	assert.Equal(t, "Este campo es obligatorio.", campoInvalido(t, err, "nombre"))
}

func TestNivel_IDInexistente(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()

	_, err := c.niveles.Obtener(ctx, 42)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
	_, err = c.niveles.Actualizar(ctx, 42, dto.NivelForm{Nombre: "X"})
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
	assert.ErrorIs(t, c.niveles.Eliminar(ctx, 42), service.ErrNoEncontrado)
}

func TestNivel_EliminarConGradosSeRechaza(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()
	n, err := c.niveles.Crear(ctx, dto.NivelForm{Nombre: "Básica Primaria"})
	require.NoError(t, err)
	_, err = c.grados.Crear(ctx, dto.GradoForm{NivelID: n.ID, Nombre: "Primero"})
	require.NoError(t, err)

	err = c.niveles.Eliminar(ctx, n.ID)
	assert.ErrorIs(t, err, service.ErrTieneDependientes)
	assert.Equal(t, "No se puede eliminar el nivel educativo: tiene 1 grado(s) asociados.", err.Error())

	_, err = c.niveles.Obtener(ctx, n.ID)
	assert.NoError(t, err)
}

// ── Grados ────────────────────────────────────────────────────────────────────

func TestGrado_SinNivelValido(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()

	_, err := c.grados.Crear(ctx, dto.GradoForm{NivelID: 0, Nombre: "Primero"})
	assert.Equal(t, "Seleccione una opción válida.", campoInvalido(t, err, "nivel"))

	_, err = c.grados.Crear(ctx, dto.GradoForm{NivelID: 7, Nombre: "Primero"})
	assert.Equal(t, "Seleccione una opción válida.", campoInvalido(t, err, "nivel"))

	list, err := c.grados.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGrado_CambiarDeNivel(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()
	n1, err := c.niveles.Crear(ctx, dto.NivelForm{Nombre: "Básica Primaria"})
	require.NoError(t, err)
	n2, err := c.niveles.Crear(ctx, dto.NivelForm{Nombre: "Básica Secundaria"})
	require.NoError(t, err)
	g, err := c.grados.Crear(ctx, dto.GradoForm{NivelID: n1.ID, Nombre: "Quinto"})
	require.NoError(t, err)

	_, err = c.grados.Actualizar(ctx, g.ID, dto.GradoForm{NivelID: n2.ID, Nombre: "Sexto"})
	require.NoError(t, err)

	got, err := c.grados.Obtener(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, n2.ID, got.NivelID)
	assert.Equal(t, "Básica Secundaria", got.Nivel.Nombre)
	assert.Equal(t, "Sexto", got.Nombre)
}

// ── Áreas / Asignaturas ───────────────────────────────────────────────────────

func TestArea_Obligatoria(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()

	a, err := c.areas.Crear(ctx, dto.AreaForm{Nombre: "Matemáticas", Obligatoria: true})
	require.NoError(t, err)
	assert.True(t, a.Obligatoria)

	a, err = c.areas.Actualizar(ctx, a.ID, dto.AreaForm{Nombre: "Matemáticas", Obligatoria: false})
	require.NoError(t, err)
	assert.False(t, a.Obligatoria)
}

func TestAsignatura_ValidaGradoYArea(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()
	n, _ := c.niveles.Crear(ctx, dto.NivelForm{Nombre: "Media"})
	g, err := c.grados.Crear(ctx, dto.GradoForm{NivelID: n.ID, Nombre: "Décimo"})
	require.NoError(t, err)

	_, err = c.asignaturas.Crear(ctx, dto.AsignaturaForm{Nombre: "Física", GradoID: g.ID, AreaID: 3})
	assert.NotEmpty(t, campoInvalido(t, err, "area"))

	_, err = c.asignaturas.Crear(ctx, dto.AsignaturaForm{Nombre: "Física", GradoID: 99, AreaID: 3})
	assert.NotEmpty(t, campoInvalido(t, err, "grado"))
}

func TestArea_EliminarConAsignaturasSeRechaza(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()
	asig := crearAsignatura(t, c)

	err := c.areas.Eliminar(ctx, asig.AreaID)
	assert.ErrorIs(t, err, service.ErrTieneDependientes)
	err = c.grados.Eliminar(ctx, asig.GradoID)
	assert.ErrorIs(t, err, service.ErrTieneDependientes)
}

// ── Temas / Logros ────────────────────────────────────────────────────────────

func TestTemaYLogro_BloqueanEliminarAsignatura(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()
	asig := crearAsignatura(t, c)

	tema, err := c.temas.Crear(ctx, dto.TemaForm{Nombre: "Fracciones", AsignaturaID: asig.ID})
	require.NoError(t, err)
	logro, err := c.logros.Crear(ctx, dto.LogroForm{Descripcion: "Suma fracciones homogéneas", AsignaturaID: asig.ID})
	require.NoError(t, err)

	err = c.asignaturas.Eliminar(ctx, asig.ID)
	assert.Equal(t, "No se puede eliminar la asignatura: tiene 1 tema(s) asociados.", err.Error())

	require.NoError(t, c.temas.Eliminar(ctx, tema.ID))
	err = c.asignaturas.Eliminar(ctx, asig.ID)
	assert.Equal(t, "No se puede eliminar la asignatura: tiene 1 logro(s) asociados.", err.Error())

	require.NoError(t, c.logros.Eliminar(ctx, logro.ID))
	assert.NoError(t, c.asignaturas.Eliminar(ctx, asig.ID))
}

func TestTema_SinAsignatura(t *testing.T) {
	c := newCurriculo(t)

	_, err := c.temas.Crear(context.Background(), dto.TemaForm{Nombre: "Fracciones"})
	assert.NotEmpty(t, campoInvalido(t, err, "asignatura"))
}

func TestLogro_DescripcionObligatoria(t *testing.T) {
	c := newCurriculo(t)
	asig := crearAsignatura(t, c)

	_, err := c.logros.Crear(context.Background(), dto.LogroForm{Descripcion: " ", AsignaturaID: asig.ID})
	assert.NotEmpty(t, campoInvalido(t, err, "descripcion"))
}

// ── Plan de estudios ──────────────────────────────────────────────────────────

func TestPlan_Construir(t *testing.T) {
	c := newCurriculo(t)
	ctx := context.Background()
	asig := crearAsignatura(t, c)
	_, err := c.temas.Crear(ctx, dto.TemaForm{Nombre: "Fracciones", AsignaturaID: asig.ID})
	require.NoError(t, err)
	_, err = c.logros.Crear(ctx, dto.LogroForm{Descripcion: "Resuelve problemas", AsignaturaID: asig.ID})
	require.NoError(t, err)
	_, err = c.niveles.Crear(ctx, dto.NivelForm{Nombre: "Media"})
	require.NoError(t, err)

	plan, err := c.plan.Construir(ctx)
	require.NoError(t, err)
	require.Len(t, plan.Niveles, 2)
	assert.Equal(t, "Básica Primaria", plan.Niveles[0].Nombre)
	assert.Empty(t, plan.Niveles[1].Grados)

	require.Len(t, plan.Niveles[0].Grados, 1)
	require.Len(t, plan.Niveles[0].Grados[0].Asignaturas, 1)
	pa := plan.Niveles[0].Grados[0].Asignaturas[0]
	assert.Equal(t, "Matemáticas", pa.Nombre)
	assert.Equal(t, "Matemáticas", pa.Area)
	assert.True(t, pa.Obligatoria)
	assert.Equal(t, []string{"Fracciones"}, pa.Temas)
	assert.Equal(t, []string{"Resuelve problemas"}, pa.Logros)
}

type asignaturaCreada struct {
	ID, GradoID, AreaID uint
}

func crearAsignatura(t *testing.T, c *curriculo) asignaturaCreada {
	t.Helper()
	ctx := context.Background()
	n, err := c.niveles.Crear(ctx, dto.NivelForm{Nombre: "Básica Primaria"})
	require.NoError(t, err)
	g, err := c.grados.Crear(ctx, dto.GradoForm{NivelID: n.ID, Nombre: "Tercero"})
	require.NoError(t, err)
	a, err := c.areas.Crear(ctx, dto.AreaForm{Nombre: "Matemáticas", Obligatoria: true})
	require.NoError(t, err)
	asig, err := c.asignaturas.Crear(ctx, dto.AsignaturaForm{Nombre: "Matemáticas", GradoID: g.ID, AreaID: a.ID})
	require.NoError(t, err)
	return asignaturaCreada{ID: asig.ID, GradoID: g.ID, AreaID: a.ID}
}
