package repository

import (
	"context"
	"testing"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCRUD_CicloCompletoGrado(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	niveles := NewNivelRepository(db)
	grados := NewGradoRepository(db)

	nivel := &model.NivelEducativo{Nombre: "Básica Primaria"}
	require.NoError(t, niveles.Crear(ctx, nivel))
	require.NotZero(t, nivel.ID)

	grado := &model.Grado{Nombre: "Primero", NivelID: nivel.ID}
	require.NoError(t, grados.Crear(ctx, grado))

	list, err := grados.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Primero", list[0].Nombre)
	assert.Equal(t, "Básica Primaria", list[0].Nivel.Nombre, "parent must be preloaded")

	got, err := grados.ObtenerPorID(ctx, grado.ID)
	require.NoError(t, err)
	got.Nombre = "Primero A"
	require.NoError(t, grados.Actualizar(ctx, got))

	got, err = grados.ObtenerPorID(ctx, grado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Primero A", got.Nombre)

	n, err := grados.ContarPorNivel(ctx, nivel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, grados.Eliminar(ctx, grado.ID))
	list, err = grados.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCRUD_ActualizarCambiaPadre(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	niveles := NewNivelRepository(db)
	grados := NewGradoRepository(db)

	a := &model.NivelEducativo{Nombre: "Preescolar"}
	b := &model.NivelEducativo{Nombre: "Media"}
	require.NoError(t, niveles.Crear(ctx, a))
	require.NoError(t, niveles.Crear(ctx, b))
	g := &model.Grado{Nombre: "Transición", NivelID: a.ID}
	require.NoError(t, grados.Crear(ctx, g))

	// the preloaded Nivel must not override the new foreign key
	got, err := grados.ObtenerPorID(ctx, g.ID)
	require.NoError(t, err)
	got.NivelID = b.ID
	require.NoError(t, grados.Actualizar(ctx, got))

	got, err = grados.ObtenerPorID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.NivelID)
	assert.Equal(t, "Media", got.Nivel.Nombre)
}

func TestCRUD_NoEncontrado(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	areas := NewAreaRepository(db)

	_, err := areas.ObtenerPorID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, areas.Eliminar(ctx, 999), gorm.ErrRecordNotFound)

	ok, err := areas.Existe(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCRUD_ConteoDependientes(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	nivel := &model.NivelEducativo{Nombre: "Secundaria"}
	require.NoError(t, NewNivelRepository(db).Crear(ctx, nivel))
	grado := &model.Grado{Nombre: "Sexto", NivelID: nivel.ID}
	require.NoError(t, NewGradoRepository(db).Crear(ctx, grado))
	area := &model.Area{Nombre: "Humanidades", Obligatoria: true}
	require.NoError(t, NewAreaRepository(db).Crear(ctx, area))

	asignaturas := NewAsignaturaRepository(db)
	asig := &model.Asignatura{Nombre: "Lengua Castellana", GradoID: grado.ID, AreaID: area.ID}
	require.NoError(t, asignaturas.Crear(ctx, asig))

	temas := NewTemaRepository(db)
	logros := NewLogroRepository(db)
	require.NoError(t, temas.Crear(ctx, &model.Tema{Nombre: "La oración", AsignaturaID: asig.ID}))
	require.NoError(t, logros.Crear(ctx, &model.Logro{Descripcion: "Identifica sujeto y predicado.", AsignaturaID: asig.ID}))

	n, err := asignaturas.ContarPorArea(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = asignaturas.ContarPorGrado(ctx, grado.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = temas.ContarPorAsignatura(ctx, asig.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = logros.ContarPorAsignatura(ctx, asig.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := temas.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lengua Castellana", list[0].Asignatura.Nombre)
	assert.Equal(t, "Sexto", list[0].Asignatura.Grado.Nombre)
}

func TestUsuarioRepo_CorreoSinDistinguirMayusculas(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roles, err := NewRolRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 4, "roles are seeded by the migration")

	usuarios := NewUsuarioRepository(db)
	u := &model.Usuario{Correo: "Ana@Colegio.edu.co", PasswordHash: "x", RolID: roles[1].ID}
	require.NoError(t, usuarios.Create(ctx, u))

	got, err := usuarios.FindByCorreo(ctx, "ana@colegio.edu.co")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, roles[1].Nombre, got.Rol.Nombre)

	_, err = usuarios.FindByCorreo(ctx, "nadie@colegio.edu.co")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dup := &model.Usuario{Correo: "Ana@Colegio.edu.co", PasswordHash: "y", RolID: roles[0].ID}
	assert.Error(t, usuarios.Create(ctx, dup), "correo is unique")
}
