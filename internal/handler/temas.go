package handler

import (
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

var recursoTemas = recurso{
	ruta:      "/coordinador/temas/",
	plantilla: "temas",
	titulo:    "Temas",
	msg: mensajes{
		creado:          "Tema creado correctamente.",
		errorCrear:      "Error al crear el tema.",
		actualizado:     "Tema actualizado correctamente.",
		errorActualizar: "Error al actualizar el tema.",
		eliminado:       "Tema eliminado correctamente.",
	},
}

type TemasHandler struct {
	svc         service.TemaService
	asignaturas service.AsignaturaService
	v           *validation.Validator
}

func NewTemasHandler(svc service.TemaService, asignaturas service.AsignaturaService, v *validation.Validator) *TemasHandler {
	return &TemasHandler{svc: svc, asignaturas: asignaturas, v: v}
}

// Listar GET /coordinador/temas/
func (h *TemasHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	recursoTemas.renderLista(c, items)
}

// opciones loads the parent choices of the form.
func (h *TemasHandler) opciones(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	asignaturas, err := h.asignaturas.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{"Asignaturas": asignaturas}, nil
}

// Nuevo GET /coordinador/temas/nuevo/
func (h *TemasHandler) Nuevo(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Nuevo tema", recursoTemas.accionNuevo(), dto.TemaForm{}, nil)
}

// Crear POST /coordinador/temas/nuevo/
func (h *TemasHandler) Crear(c *gin.Context) {
	var form dto.TemaForm
	verr := bindForm(c, h.v, &form)
	recursoTemas.guardar(c, verr,
		func() error {
			_, err := h.svc.Crear(c.Request.Context(), form)
			return err
		},
		recursoTemas.msg.creado, recursoTemas.msg.errorCrear,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Nuevo tema", recursoTemas.accionNuevo(), form, verr)
		})
}

// Editar GET /coordinador/temas/editar/:id/
func (h *TemasHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	form := dto.TemaForm{Nombre: e.Nombre, AsignaturaID: e.AsignaturaID}
	h.renderForm(c, http.StatusOK, "Editar tema", recursoTemas.accionEditar(id), form, nil)
}

// Actualizar POST /coordinador/temas/editar/:id/
func (h *TemasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	var form dto.TemaForm
	verr := bindForm(c, h.v, &form)
	recursoTemas.guardar(c, verr,
		func() error {
			_, err := h.svc.Actualizar(c.Request.Context(), id, form)
			return err
		},
		recursoTemas.msg.actualizado, recursoTemas.msg.errorActualizar,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Editar tema", recursoTemas.accionEditar(id), form, verr)
		})
}

// Eliminar POST /coordinador/temas/eliminar/:id/
func (h *TemasHandler) Eliminar(c *gin.Context) {
	recursoTemas.eliminar(c, func(id uint) error {
		return h.svc.Eliminar(c.Request.Context(), id)
	})
}

func (h *TemasHandler) renderForm(c *gin.Context, status int, titulo, accion string, form dto.TemaForm, verr *apperror.ValidationError) {
	extra, err := h.opciones(c)
	if err != nil {
		handleError(c, err)
		return
	}
	recursoTemas.renderForm(c, status, titulo, accion, form, verr, extra)
}
