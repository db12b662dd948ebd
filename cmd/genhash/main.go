// cmd/genhash prints the bcrypt hash of a password that satisfies the
// password policy. Uso: go run ./cmd/genhash 'Segura#2024'
package main

import (
	"fmt"
	"os"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: genhash <password>")
		os.Exit(2)
	}
	password := os.Args[1]
	if err := validation.ValidarPassword(password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
