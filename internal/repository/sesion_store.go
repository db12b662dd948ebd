package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSesionNoEncontrada = errors.New("sesión no encontrada o expirada")

// SesionStore keeps server-side sessions: session id → usuario id.
type SesionStore interface {
	Guardar(ctx context.Context, id string, usuarioID uint, ttl time.Duration) error
	Obtener(ctx context.Context, id string) (uint, error)
	Eliminar(ctx context.Context, id string) error
}

const sesionKeyPrefix = "sesion:"

type redisSesionStore struct{ rdb *redis.Client }

func NewSesionStore(rdb *redis.Client) SesionStore { return &redisSesionStore{rdb: rdb} }

func (s *redisSesionStore) Guardar(ctx context.Context, id string, usuarioID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, sesionKeyPrefix+id, strconv.FormatUint(uint64(usuarioID), 10), ttl).Err()
}

func (s *redisSesionStore) Obtener(ctx context.Context, id string) (uint, error) {
	val, err := s.rdb.Get(ctx, sesionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSesionNoEncontrada
	}
	if err != nil {
		return 0, err
	}
	uid, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrSesionNoEncontrada
	}
	return uint(uid), nil
}

func (s *redisSesionStore) Eliminar(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sesionKeyPrefix+id).Err()
}
