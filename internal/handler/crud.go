package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"

	"github.com/gin-gonic/gin"
)

// mensajes are the flash texts of one curriculum entity.
type mensajes struct {
	creado          string
	errorCrear      string
	actualizado     string
	errorActualizar string
	eliminado       string
}

// recurso describes the pages of one curriculum entity under /coordinador/.
type recurso struct {
	ruta      string // list path, e.g. "/coordinador/niveles/"
	plantilla string // template prefix, e.g. "niveles"
	titulo    string
	msg       mensajes
}

func (r recurso) accionNuevo() string { return r.ruta + "nuevo/" }

func (r recurso) accionEditar(id uint) string { return fmt.Sprintf("%seditar/%d/", r.ruta, id) }

func (r recurso) renderLista(c *gin.Context, items any) {
	renderPage(c, http.StatusOK, r.plantilla+"_lista", gin.H{"Titulo": r.titulo, "Items": items})
}

// renderForm renders the create/edit form. extra carries the parent options.
func (r recurso) renderForm(c *gin.Context, status int, titulo, accion string, form any, verr *apperror.ValidationError, extra gin.H) {
	data := gin.H{"Titulo": titulo, "Accion": accion, "Form": form, "Errores": map[string]string{}}
	if verr != nil {
		data["Errores"] = verr.Fields
		data["Detalle"] = verr.Detail
	}
	for k, v := range extra {
		data[k] = v
	}
	renderPage(c, status, r.plantilla+"_form", data)
}

// guardar answers a create/edit POST. op runs only when the bound form is
// valid; a validation error from either step re-renders the form with fallo.
func (r recurso) guardar(c *gin.Context, verr *apperror.ValidationError, op func() error, exito, fallo string, rerender func(int, *apperror.ValidationError)) {
	if verr == nil {
		if err := op(); err != nil {
			v, ok := asValidation(err)
			if !ok {
				handleError(c, err)
				return
			}
			verr = v
		}
	}
	if verr != nil {
		verr.Detail = fallo
		rerender(http.StatusUnprocessableEntity, verr)
		return
	}
	redirectConFlash(c, r.ruta, flashExito, exito)
}

// eliminar answers POST .../eliminar/:id/. Records with dependents are kept
// and the reason is flashed on the list page.
func (r recurso) eliminar(c *gin.Context, op func(id uint) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := op(id)
	switch {
	case err == nil:
		redirectConFlash(c, r.ruta, flashExito, r.msg.eliminado)
	case errors.Is(err, service.ErrTieneDependientes):
		redirectConFlash(c, r.ruta, flashError, err.Error())
	default:
		handleError(c, err)
	}
}
