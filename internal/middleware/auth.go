package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/auth"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/model"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	PrincipalKey = "principal"
	// SesionCookie holds the signed session token.
	SesionCookie = "sesion"

	MsgSinPermisos = "No tienes permisos para acceder a esta página"
)

// Autenticador resolves a session token into the current principal.
type Autenticador interface {
	Autenticar(ctx context.Context, token string) (*auth.Principal, error)
}

// Sesion loads the principal of the request from the session cookie. A
// missing or invalid cookie leaves the request anonymous; it never aborts.
func Sesion(a Autenticador) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SesionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		p, err := a.Autenticar(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(PrincipalKey, p)
		case errors.Is(err, service.ErrSesionInvalida):
			ClearSesionCookie(c)
		default:
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Err(err).
				Msg("no se pudo resolver la sesión")
		}
		c.Next()
	}
}

// RequireRole runs auth.Autorizar in front of the handler. Anonymous users are
// sent to the login page with a next parameter; other roles get a 403 page.
func RequireRole(roles ...model.TipoRol) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		switch auth.Autorizar(p, roles...) {
		case auth.Permitido:
			c.Next()
		case auth.DenegadoNoAutenticado:
			c.Redirect(http.StatusFound, "/login/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
		default:
			log.Info().
				Str("request_id", c.GetString(RequestIDKey)).
				Uint("usuario_id", p.UsuarioID).
				Str("rol", p.Rol.String()).
				Str("path", c.Request.URL.Path).
				Msg("acceso denegado")
			c.HTML(http.StatusForbidden, "error", gin.H{
				"Titulo":    "Acceso denegado",
				"Mensaje":   MsgSinPermisos,
				"Principal": p,
			})
			c.Abort()
		}
	}
}

// GetPrincipal returns the authenticated user, or nil for anonymous requests.
func GetPrincipal(c *gin.Context) *auth.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// SetSesionCookie stores the session token in an HttpOnly, SameSite=Lax cookie.
func SetSesionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SesionCookie, token, maxAge, "/", "", secure, true)
}

func ClearSesionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SesionCookie, "", -1, "/", "", false, true)
}
