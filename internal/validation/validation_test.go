package validation

import (
	"testing"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_SinErrores(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestRegistrarReglas_TagVacioFalla(t *testing.T) {
	v := MustNew()
	err := v.registrarReglas([]reglaPassword{{tag: "", err: ErrPasswordCorta, cumple: func(string) bool { return true }}})
	assert.Error(t, err)
}

func TestStruct_RegistroValido(t *testing.T) {
	v := MustNew()
	err := v.Struct(&dto.RegistroForm{
		Correo: "ana@colegio.edu.co", RolID: 1,
		Password: "Abc12345#", ConfirmarPassword: "Abc12345#",
	})
	assert.Nil(t, err)
}

func TestStruct_PasswordsNoCoinciden(t *testing.T) {
	v := MustNew()
	err := v.Struct(&dto.RegistroForm{
		Correo: "ana@colegio.edu.co", RolID: 1,
		Password: "Abc12345#", ConfirmarPassword: "Abc12345!",
	})
	require.NotNil(t, err)
	assert.Equal(t, "Las contraseñas no coinciden.", err.Fields["confirmar_password"])
	assert.NotContains(t, err.Fields, "password")
}

func TestStruct_PasswordDebil(t *testing.T) {
	v := MustNew()
	err := v.Struct(&dto.RegistroForm{
		Correo: "ana@colegio.edu.co", RolID: 1,
		Password: "abc12345", ConfirmarPassword: "abc12345",
	})
	require.NotNil(t, err)
	assert.Equal(t, ErrPasswordMayuscula.Error(), err.Fields["password"])
}

func TestStruct_CamposObligatorios(t *testing.T) {
	v := MustNew()
	err := v.Struct(&dto.GradoForm{})
	require.NotNil(t, err)
	assert.Equal(t, "Este campo es obligatorio.", err.Fields["nombre"])
	assert.Equal(t, "Este campo es obligatorio.", err.Fields["nivel"])
}

func TestStruct_CorreoInvalido(t *testing.T) {
	v := MustNew()
	err := v.Struct(&dto.LoginForm{Correo: "no-es-correo", Password: "x"})
	require.NotNil(t, err)
	assert.Equal(t, "Ingresa un correo electrónico válido.", err.Fields["correo"])
}
