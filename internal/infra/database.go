package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite://"

// NewDatabase opens a GORM connection and migrates the schema. The driver is
// chosen from the URL: "sqlite://<path>" (":memory:" allowed) or a postgres DSN.
func NewDatabase(url string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if path, ok := strings.CutPrefix(url, sqlitePrefix); ok {
		// foreign keys are off by default in SQLite
		dialector = sqlite.Open(path + sqliteParams(path))
	} else {
		dialector = postgres.Open(url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if db.Dialector.Name() == "sqlite" {
		// a single connection keeps an in-memory database alive across queries
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

func sqliteParams(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return sep + "_pragma=foreign_keys(1)"
}

// RunMigrations creates / updates every table, applies the patches GORM
// cannot express and seeds the fixed role rows. Safe to run on every start.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Todos()...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return SeedRoles(context.Background(), db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	patches := []struct{ descr, sql string }{
		// login looks users up by correo case-insensitively
		{"idx_usuarios_correo_lower",
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_usuarios_correo_lower ON usuarios (LOWER(correo))`},
		{"idx_grados_nivel_nombre",
			`CREATE INDEX IF NOT EXISTS idx_grados_nivel_nombre ON grados (nivel_id, nombre)`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}

// SeedRoles inserts the canonical role names that are missing.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	for _, nombre := range model.NombresRoles() {
		var rol model.Rol
		err := db.WithContext(ctx).Where("nombre = ?", nombre).First(&rol).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed rol %q: %w", nombre, err)
		}
		if err := db.WithContext(ctx).Create(&model.Rol{Nombre: nombre}).Error; err != nil {
			return fmt.Errorf("seed rol %q: %w", nombre, err)
		}
	}
	return nil
}
