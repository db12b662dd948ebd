package handler

import (
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

var recursoLogros = recurso{
	ruta:      "/coordinador/logros/",
	plantilla: "logros",
	titulo:    "Logros",
	msg: mensajes{
		creado:          "Logro creado correctamente.",
		errorCrear:      "Error al crear el logro.",
		actualizado:     "Logro actualizado correctamente.",
		errorActualizar: "Error al actualizar el logro.",
		eliminado:       "Logro eliminado correctamente.",
	},
}

type LogrosHandler struct {
	svc         service.LogroService
	asignaturas service.AsignaturaService
	v           *validation.Validator
}

func NewLogrosHandler(svc service.LogroService, asignaturas service.AsignaturaService, v *validation.Validator) *LogrosHandler {
	return &LogrosHandler{svc: svc, asignaturas: asignaturas, v: v}
}

// Listar GET /coordinador/logros/
func (h *LogrosHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	recursoLogros.renderLista(c, items)
}

// opciones loads the parent choices of the form.
func (h *LogrosHandler) opciones(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	asignaturas, err := h.asignaturas.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{"Asignaturas": asignaturas}, nil
}

// Nuevo GET /coordinador/logros/nuevo/
func (h *LogrosHandler) Nuevo(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Nuevo logro", recursoLogros.accionNuevo(), dto.LogroForm{}, nil)
}

// Crear POST /coordinador/logros/nuevo/
func (h *LogrosHandler) Crear(c *gin.Context) {
	var form dto.LogroForm
	verr := bindForm(c, h.v, &form)
	recursoLogros.guardar(c, verr,
		func() error {
			_, err := h.svc.Crear(c.Request.Context(), form)
			return err
		},
		recursoLogros.msg.creado, recursoLogros.msg.errorCrear,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Nuevo logro", recursoLogros.accionNuevo(), form, verr)
		})
}

// Editar GET /coordinador/logros/editar/:id/
func (h *LogrosHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	form := dto.LogroForm{Descripcion: e.Descripcion, AsignaturaID: e.AsignaturaID}
	h.renderForm(c, http.StatusOK, "Editar logro", recursoLogros.accionEditar(id), form, nil)
}

// Actualizar POST /coordinador/logros/editar/:id/
func (h *LogrosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	var form dto.LogroForm
	verr := bindForm(c, h.v, &form)
	recursoLogros.guardar(c, verr,
		func() error {
			_, err := h.svc.Actualizar(c.Request.Context(), id, form)
			return err
		},
		recursoLogros.msg.actualizado, recursoLogros.msg.errorActualizar,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Editar logro", recursoLogros.accionEditar(id), form, verr)
		})
}

// Eliminar POST /coordinador/logros/eliminar/:id/
func (h *LogrosHandler) Eliminar(c *gin.Context) {
	recursoLogros.eliminar(c, func(id uint) error {
		return h.svc.Eliminar(c.Request.Context(), id)
	})
}

func (h *LogrosHandler) renderForm(c *gin.Context, status int, titulo, accion string, form dto.LogroForm, verr *apperror.ValidationError) {
	extra, err := h.opciones(c)
	if err != nil {
		handleError(c, err)
		return
	}
	recursoLogros.renderForm(c, status, titulo, accion, form, verr, extra)
}
