package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarPassword_Ejemplos(t *testing.T) {
	assert.NoError(t, ValidarPassword("Abc12345#"))
	assert.True(t, PasswordSegura("Abc12345#"))

	// no upper-case and no symbol: upper-case is reported first
	assert.ErrorIs(t, ValidarPassword("abc12345"), ErrPasswordMayuscula)
	assert.False(t, PasswordSegura("abc12345"))
}

func TestValidarPassword_PrimeraReglaFallida(t *testing.T) {
	casos := []struct {
		password string
		want     error
	}{
		{"", ErrPasswordCorta},
		{"Ab1#", ErrPasswordCorta},
		{"Ab1#xyz", ErrPasswordCorta},
		{"abcdefg1#", ErrPasswordMayuscula},
		{"ABCDEFG1#", ErrPasswordMinuscula},
		{"Abcdefgh#", ErrPasswordDigito},
		{"Abcdefg12", ErrPasswordSimbolo},
		{"Abcdefg1@", ErrPasswordSimbolo},
		{"Abcdefg1_", nil},
		{"Abcdefg1!", nil},
		{"Abcdefg1$", nil},
		{"Abcdefg1%", nil},
		{"Ñandú123#", ErrPasswordMayuscula},
		{"Éxito123#", ErrPasswordMayuscula},
		{"ÉXITO123#", ErrPasswordMinuscula},
		{"ÑandúA12#", nil},
		{"Abcdefg٣#", nil},
	}
	for _, tc := range casos {
		err := ValidarPassword(tc.password)
		if tc.want == nil {
			assert.NoError(t, err, tc.password)
			continue
		}
		assert.ErrorIs(t, err, tc.want, tc.password)
	}
}

// accepts(p) iff len>=8 and upper, lower, digit and a policy symbol are present.
func TestPasswordSegura_Propiedad(t *testing.T) {
	alfabeto := []string{"A", "b", "7", "#", "_", "@", " ", "z", "Q"}
	// every string of length 0..8 built from a small alphabet, sampled
	var generar func(prefijo string, n int)
	revisados := 0
	generar = func(prefijo string, n int) {
		if n == 0 {
			revisados++
			esperado := len([]rune(prefijo)) >= 8 &&
				strings.ContainsAny(prefijo, "AQ") &&
				strings.ContainsAny(prefijo, "bz") &&
				strings.Contains(prefijo, "7") &&
				strings.ContainsAny(prefijo, "#_")
			assert.Equal(t, esperado, PasswordSegura(prefijo), "%q", prefijo)
			return
		}
		for i, c := range alfabeto {
			// skip most branches to keep the search small
			if (len(prefijo)+i)%3 != 0 && n < 6 {
				continue
			}
			generar(prefijo+c, n-1)
		}
	}
	for n := 0; n <= 9; n += 3 {
		generar("", n)
	}
	assert.Greater(t, revisados, 10)
}
