package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/auth"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/config"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/repository"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const msgOpcionInvalida = "Seleccione una opción válida."

// Notificador enqueues outgoing emails; *worker.Dispatcher implements it.
type Notificador interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
}

type AuthService interface {
	Registrar(ctx context.Context, form dto.RegistroForm) (*model.Usuario, error)
	Login(ctx context.Context, form dto.LoginForm) (*dto.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Autenticar(ctx context.Context, token string) (*auth.Principal, error)
	ListarRoles(ctx context.Context) ([]model.Rol, error)
	DuracionSesion() time.Duration
}

type authService struct {
	usuarios    repository.UsuarioRepository
	roles       repository.RolRepository
	sesiones    repository.SesionStore
	notificador Notificador
	cfg         *config.Config
}

func NewAuthService(
	usuarios repository.UsuarioRepository,
	roles repository.RolRepository,
	sesiones repository.SesionStore,
	notificador Notificador,
	cfg *config.Config,
) AuthService {
	return &authService{usuarios: usuarios, roles: roles, sesiones: sesiones, notificador: notificador, cfg: cfg}
}

func (s *authService) DuracionSesion() time.Duration {
	return time.Duration(s.cfg.SessionHours) * time.Hour
}

// Registrar creates a Usuario. Invalid input yields *apperror.ValidationError.
func (s *authService) Registrar(ctx context.Context, form dto.RegistroForm) (*model.Usuario, error) {
	correo := strings.TrimSpace(form.Correo)

	if form.Password != form.ConfirmarPassword {
		return nil, apperror.Campo("confirmar_password", "Las contraseñas no coinciden.")
	}
	if err := validation.ValidarPassword(form.Password); err != nil {
		return nil, apperror.Campo("password", err.Error())
	}

	rol, err := s.roles.FindByID(ctx, form.RolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Campo("rol", msgOpcionInvalida)
		}
		return nil, err
	}

	existing, err := s.usuarios.FindByCorreo(ctx, correo)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Campo("correo", "Ya existe un usuario con este correo.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &model.Usuario{Correo: correo, PasswordHash: string(hash), RolID: rol.ID, Rol: *rol}
	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}

	s.enviarBienvenida(ctx, u)
	return u, nil
}

// enviarBienvenida never fails the registration: queue errors are only logged.
func (s *authService) enviarBienvenida(ctx context.Context, u *model.Usuario) {
	if s.notificador == nil {
		return
	}
	payload := worker.EmailJobPayload{
		ToEmail: u.Correo,
		Subject: "Bienvenido al Sistema Escolar",
		Body: fmt.Sprintf("Hola,\n\nTu cuenta (%s) fue registrada con el rol %s.\nYa puedes iniciar sesión.\n",
			u.Correo, u.Rol.Nombre),
	}
	if err := s.notificador.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Uint("usuario_id", u.ID).Msg("no se pudo encolar el correo de bienvenida")
	}
}

// Login checks credentials, opens a session and resolves the landing page.
func (s *authService) Login(ctx context.Context, form dto.LoginForm) (*dto.LoginResult, error) {
	u, err := s.usuarios.FindByCorreo(ctx, strings.TrimSpace(form.Correo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(form.Password)); err != nil {
		return nil, ErrPasswordIncorrecta
	}

	tipo, err := model.ParseTipoRol(u.Rol.Nombre)
	if err != nil {
		return nil, &RolNoReconocidoError{Nombre: u.Rol.Nombre}
	}
	destino, ok := auth.PanelDe(tipo)
	if !ok {
		return nil, &RolNoReconocidoError{Nombre: u.Rol.Nombre}
	}

	token, err := s.abrirSesion(ctx, u)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{Token: token, Destino: destino, Correo: u.Correo}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		// nothing to revoke
		return nil
	}
	return s.sesiones.Eliminar(ctx, claims.ID)
}

// Autenticar resolves the session token into the current principal. The user
// and role are read from the database on every call.
func (s *authService) Autenticar(ctx context.Context, token string) (*auth.Principal, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrSesionInvalida
	}

	uid, err := s.sesiones.Obtener(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSesionNoEncontrada) {
			return nil, ErrSesionInvalida
		}
		return nil, err
	}
	if claims.Subject != strconv.FormatUint(uint64(uid), 10) {
		return nil, ErrSesionInvalida
	}

	u, err := s.usuarios.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSesionInvalida
		}
		return nil, err
	}
	tipo, err := model.ParseTipoRol(u.Rol.Nombre)
	if err != nil {
		return nil, ErrSesionInvalida
	}
	return &auth.Principal{UsuarioID: u.ID, Correo: u.Correo, Rol: tipo}, nil
}

func (s *authService) ListarRoles(ctx context.Context) ([]model.Rol, error) {
	return s.roles.List(ctx)
}

// abrirSesion stores a server-side session and returns the signed cookie
// token whose jti is the session id.
func (s *authService) abrirSesion(ctx context.Context, u *model.Usuario) (string, error) {
	sid := uuid.NewString()
	dur := s.DuracionSesion()
	if err := s.sesiones.Guardar(ctx, sid, u.ID, dur); err != nil {
		return "", fmt.Errorf("guardar sesión: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sid,
		Subject:   strconv.FormatUint(uint64(u.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(dur)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

func (s *authService) parseToken(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSesionInvalida
	}
	return claims, nil
}
