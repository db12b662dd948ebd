package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CRUDRepository defines the operations shared by every curriculum entity.
type CRUDRepository[T any] interface {
	Crear(ctx context.Context, e *T) error
	Listar(ctx context.Context) ([]T, error)
	ObtenerPorID(ctx context.Context, id uint) (*T, error)
	Actualizar(ctx context.Context, e *T) error
	Eliminar(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

// crudRepository implements CRUDRepository over GORM. preloads are the
// parent associations loaded for listing and lookups.
type crudRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

func newCRUDRepository[T any](db *gorm.DB, preloads ...string) *crudRepository[T] {
	return &crudRepository[T]{db: db, preloads: preloads}
}

func (r *crudRepository[T]) conPreloads(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Associations are never written through the child: only the foreign key
// columns set by the service are persisted.
func (r *crudRepository[T]) Crear(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *crudRepository[T]) Listar(ctx context.Context) ([]T, error) {
	var list []T
	err := r.conPreloads(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *crudRepository[T]) ObtenerPorID(ctx context.Context, id uint) (*T, error) {
	var e T
	if err := r.conPreloads(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *crudRepository[T]) Actualizar(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

// Eliminar returns gorm.ErrRecordNotFound when no row had that id.
func (r *crudRepository[T]) Eliminar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crudRepository[T]) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *crudRepository[T]) contarDonde(ctx context.Context, columna string, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(columna+" = ?", id).Count(&n).Error
	return n, err
}
