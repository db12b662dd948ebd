package repository

import (
	"context"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error
}

// FindByCorreo matches the email case-insensitively and preloads the role.
func (r *usuarioRepo) FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").
		Where("LOWER(correo) = LOWER(?)", correo).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Preload("Rol").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ── Roles ─────────────────────────────────────────────────────────────────────

type RolRepository interface {
	List(ctx context.Context) ([]model.Rol, error)
	FindByID(ctx context.Context, id uint) (*model.Rol, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("id asc").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(ctx context.Context, id uint) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).First(&rol, id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}
