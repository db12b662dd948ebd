package infra

import (
	"bytes"
	"testing"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePlanEstudiosPDF(t *testing.T) {
	plan := dto.PlanEstudios{Niveles: []dto.PlanNivel{{
		Nombre: "Básica Primaria",
		Grados: []dto.PlanGrado{{
			Nombre: "Primero",
			Asignaturas: []dto.PlanAsignatura{{
				Nombre: "Matemáticas", Area: "Matemáticas", Obligatoria: true,
				Temas:  []string{"Números naturales", "Sumas"},
				Logros: []string{"Reconoce los números del 1 al 100."},
			}},
		}, {Nombre: "Segundo"}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, WritePlanEstudiosPDF(&buf, plan, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePlanEstudiosPDF_Vacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlanEstudiosPDF(&buf, dto.PlanEstudios{}, time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
