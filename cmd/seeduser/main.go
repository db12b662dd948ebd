// cmd/seeduser creates or resets a Coordinador Académico account.
// Uso: go run ./cmd/seeduser -correo coordinador@colegio.edu.co -password 'Coord#2024'
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/config"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	correo := flag.String("correo", "coordinador@colegio.edu.co", "correo del coordinador")
	password := flag.String("password", "", "contraseña (debe cumplir la política)")
	flag.Parse()

	if err := validation.ValidarPassword(*password); err != nil {
		log.Fatal().Err(err).Msg("contraseña rechazada")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	// NewDatabase migrates and seeds the roles
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	ctx := context.Background()
	var rol model.Rol
	if err := db.WithContext(ctx).Where("nombre = ?", model.NombreCoordinador).First(&rol).Error; err != nil {
		log.Fatal().Err(err).Msg("rol de coordinador no encontrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	c := strings.TrimSpace(*correo)
	var u model.Usuario
	err = db.WithContext(ctx).Where("LOWER(correo) = LOWER(?)", c).First(&u).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = model.Usuario{Correo: c, PasswordHash: string(hash), RolID: rol.ID}
		err = db.WithContext(ctx).Create(&u).Error
	case err == nil:
		err = db.WithContext(ctx).Model(&u).Updates(map[string]any{
			"password_hash": string(hash),
			"rol_id":        rol.ID,
		}).Error
	}
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo guardar el usuario")
	}
	log.Info().Str("correo", c).Uint("id", u.ID).Msg("coordinador creado/actualizado")
}
