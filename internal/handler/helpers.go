package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/middleware"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "flash"

	flashExito = "exito"
	flashError = "error"

	msgOpcionInvalida = "Seleccione una opción válida."
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Tipo    string
	Mensaje string
}

func setFlash(c *gin.Context, tipo, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, tipo+"|"+msg, 60, "/", "", false, true)
}

// popFlash reads and clears the pending flash message. gin escapes cookie
// values, so the message may contain any character.
func popFlash(c *gin.Context) *Flash {
	val, err := c.Cookie(flashCookie)
	if err != nil || val == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	tipo, msg, ok := strings.Cut(val, "|")
	if !ok || (tipo != flashExito && tipo != flashError) {
		return nil
	}
	return &Flash{Tipo: tipo, Mensaje: msg}
}

// renderPage renders page inside the layout, adding the principal and any
// pending flash to data.
func renderPage(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Principal"] = middleware.GetPrincipal(c)
	if f := popFlash(c); f != nil {
		data["Flash"] = f
	}
	c.HTML(status, page, data)
}

// redirectConFlash answers 303 so the browser follows with a GET.
func redirectConFlash(c *gin.Context, path, tipo, msg string) {
	setFlash(c, tipo, msg)
	c.Redirect(http.StatusSeeOther, path)
}

func renderNoEncontrado(c *gin.Context) {
	renderPage(c, http.StatusNotFound, "error", gin.H{
		"Titulo":  "Página no encontrada",
		"Mensaje": "El registro solicitado no existe.",
	})
}

// bindForm binds the urlencoded body into form and validates it. A nil
// result means the form is valid.
func bindForm(c *gin.Context, v *validation.Validator, form any) *apperror.ValidationError {
	if err := c.ShouldBind(form); err != nil {
		return &apperror.ValidationError{Detail: "Datos de formulario inválidos.", Fields: camposNoConvertibles(c, form)}
	}
	return v.Struct(form)
}

// camposNoConvertibles lists the posted numeric and boolean fields whose value
// does not parse into the form's field type. Those are the select and
// checkbox inputs, so each gets msgOpcionInvalida.
func camposNoConvertibles(c *gin.Context, form any) map[string]string {
	fields := map[string]string{}
	t := reflect.TypeOf(form)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fields
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		raw, ok := c.GetPostForm(name)
		if !ok || raw == "" {
			continue
		}
		var err error
		switch f.Type.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			_, err = strconv.ParseUint(raw, 10, f.Type.Bits())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			_, err = strconv.ParseInt(raw, 10, f.Type.Bits())
		case reflect.Bool:
			_, err = strconv.ParseBool(raw)
		}
		if err != nil {
			fields[name] = msgOpcionInvalida
		}
	}
	return fields
}

// parseID reads the :id parameter. Non-numeric ids render the 404 page.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		renderNoEncontrado(c)
		return 0, false
	}
	return uint(id), true
}

// asValidation extracts the form errors carried by err, if any.
func asValidation(err error) (*apperror.ValidationError, bool) {
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// handleError answers the errors that are not form errors: a lookup miss is a
// 404 page, anything else goes to middleware.ErrorHandler as a 500.
func handleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoEncontrado) {
		renderNoEncontrado(c)
		return
	}
	_ = c.Error(err)
}
