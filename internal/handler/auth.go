package handler

import (
	"errors"
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/middleware"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const msgRegistroExitoso = "Usuario registrado correctamente. Ya puedes iniciar sesión."

type AuthHandler struct {
	svc          service.AuthService
	v            *validation.Validator
	secureCookie bool
}

func NewAuthHandler(svc service.AuthService, v *validation.Validator, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, v: v, secureCookie: secureCookie}
}

// ── Registro ──────────────────────────────────────────────────────────────────

// RegistroForm GET /registro/
func (h *AuthHandler) RegistroForm(c *gin.Context) {
	h.renderRegistro(c, http.StatusOK, dto.RegistroForm{}, nil)
}

// Registrar POST /registro/
func (h *AuthHandler) Registrar(c *gin.Context) {
	var form dto.RegistroForm
	if verr := bindForm(c, h.v, &form); verr != nil {
		h.renderRegistro(c, http.StatusUnprocessableEntity, form, verr)
		return
	}

	u, err := h.svc.Registrar(c.Request.Context(), form)
	if err != nil {
		if verr, ok := asValidation(err); ok {
			h.renderRegistro(c, http.StatusUnprocessableEntity, form, verr)
			return
		}
		handleError(c, err)
		return
	}

	log.Info().Uint("usuario_id", u.ID).Str("rol", u.Rol.Nombre).Msg("usuario registrado")
	redirectConFlash(c, "/login/", flashExito, msgRegistroExitoso)
}

func (h *AuthHandler) renderRegistro(c *gin.Context, status int, form dto.RegistroForm, verr *apperror.ValidationError) {
	roles, err := h.svc.ListarRoles(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	data := gin.H{"Titulo": "Registro", "Form": form, "Roles": roles, "Errores": map[string]string{}}
	if verr != nil {
		data["Errores"] = verr.Fields
		data["Detalle"] = verr.Detail
	}
	renderPage(c, status, "registro", data)
}

// ── Login / Logout ────────────────────────────────────────────────────────────

// LoginForm GET /login/
func (h *AuthHandler) LoginForm(c *gin.Context) {
	renderPage(c, http.StatusOK, "login", gin.H{
		"Titulo": "Iniciar sesión", "Form": dto.LoginForm{}, "Errores": map[string]string{},
	})
}

// Login POST /login/
// Authentication failures re-render the page with a plain message; the
// session cookie is only set once the role has a landing page.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if verr := bindForm(c, h.v, &form); verr != nil {
		renderPage(c, http.StatusUnprocessableEntity, "login", gin.H{
			"Titulo": "Iniciar sesión", "Form": form, "Errores": verr.Fields,
		})
		return
	}

	res, err := h.svc.Login(c.Request.Context(), form)
	if err != nil {
		var rolErr *service.RolNoReconocidoError
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado),
			errors.Is(err, service.ErrPasswordIncorrecta),
			errors.As(err, &rolErr):
			log.Info().Str("correo", form.Correo).Str("motivo", err.Error()).Msg("login rechazado")
			renderPage(c, http.StatusUnauthorized, "login", gin.H{
				"Titulo": "Iniciar sesión", "Form": form, "Errores": map[string]string{}, "Error": err.Error(),
			})
		default:
			handleError(c, err)
		}
		return
	}

	maxAge := int(h.svc.DuracionSesion().Seconds())
	middleware.SetSesionCookie(c, res.Token, maxAge, h.secureCookie)
	c.Redirect(http.StatusSeeOther, res.Destino)
}

// Logout POST /logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SesionCookie); err == nil && token != "" {
		if err := h.svc.Logout(c.Request.Context(), token); err != nil {
			log.Warn().Err(err).Msg("no se pudo revocar la sesión")
		}
	}
	middleware.ClearSesionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login/")
}
