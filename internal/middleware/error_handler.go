package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const msgErrorInterno = "Ocurrió un error interno. Intenta de nuevo más tarde."

// ErrorHandler logs errors attached with c.Error and renders a generic 500
// page when the handler did not write a response. Internal details never
// reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err.Err).
			Msg("unhandled error")

		if c.Writer.Written() {
			return
		}
		renderErrorInterno(c)
	}
}

// Recovery handles panics and converts them into 500 pages.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				if !c.Writer.Written() {
					renderErrorInterno(c)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}

func renderErrorInterno(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Titulo":    "Error interno",
		"Mensaje":   msgErrorInterno,
		"Principal": GetPrincipal(c),
	})
	c.Abort()
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Warn()
		}
		if p := GetPrincipal(c); p != nil {
			ev = ev.Uint("usuario_id", p.UsuarioID)
		}
		ev.Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
