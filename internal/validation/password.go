package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Password policy.
const (
	LongitudMinimaPassword = 8
	SimbolosPassword       = "#$%!_"
)

var (
	ErrPasswordCorta     = errors.New("La contraseña debe tener al menos 8 caracteres.")
	ErrPasswordMayuscula = errors.New("La contraseña debe incluir al menos una letra mayúscula.")
	ErrPasswordMinuscula = errors.New("La contraseña debe incluir al menos una letra minúscula.")
	ErrPasswordDigito    = errors.New("La contraseña debe incluir al menos un número.")
	ErrPasswordSimbolo   = errors.New("La contraseña debe incluir al menos un símbolo especial: # $ % ! _")
)

// reglaPassword is one rule of the policy, exposed to the validator as tag.
type reglaPassword struct {
	tag    string
	err    error
	cumple func(string) bool
}

// reglasPassword is ordered: ValidarPassword reports the first failure.
var reglasPassword = []reglaPassword{
	{"pwdminlen", ErrPasswordCorta, func(p string) bool { return utf8.RuneCountInString(p) >= LongitudMinimaPassword }},
	{"pwdmayus", ErrPasswordMayuscula, func(p string) bool { return strings.ContainsFunc(p, esMayusculaASCII) }},
	{"pwdminus", ErrPasswordMinuscula, func(p string) bool { return strings.ContainsFunc(p, esMinusculaASCII) }},
	{"pwddigito", ErrPasswordDigito, func(p string) bool { return strings.ContainsFunc(p, unicode.IsDigit) }},
	{"pwdsimbolo", ErrPasswordSimbolo, func(p string) bool { return strings.ContainsAny(p, SimbolosPassword) }},
}

// Letters count only in A-Z and a-z; digits are any Unicode decimal digit.
func esMayusculaASCII(r rune) bool { return r >= 'A' && r <= 'Z' }
func esMinusculaASCII(r rune) bool { return r >= 'a' && r <= 'z' }

// ValidarPassword returns the first rule p violates, checked in the order
// length, upper-case, lower-case, digit, symbol. Nil means p is acceptable.
func ValidarPassword(p string) error {
	for _, r := range reglasPassword {
		if !r.cumple(p) {
			return r.err
		}
	}
	return nil
}

// PasswordSegura reports whether p satisfies the whole policy.
func PasswordSegura(p string) bool { return ValidarPassword(p) == nil }
