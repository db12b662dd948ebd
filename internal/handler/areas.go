package handler

import (
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

var recursoAreas = recurso{
	ruta:      "/coordinador/areas/",
	plantilla: "areas",
	titulo:    "Áreas",
	msg: mensajes{
		creado:          "Área creada correctamente.",
		errorCrear:      "Error al crear el área.",
		actualizado:     "Área actualizada correctamente.",
		errorActualizar: "Error al actualizar el área.",
		eliminado:       "Área eliminada correctamente.",
	},
}

type AreasHandler struct {
	svc service.AreaService
	v   *validation.Validator
}

func NewAreasHandler(svc service.AreaService, v *validation.Validator) *AreasHandler {
	return &AreasHandler{svc: svc, v: v}
}

// Listar GET /coordinador/areas/
func (h *AreasHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	recursoAreas.renderLista(c, items)
}

// Nuevo GET /coordinador/areas/nuevo/
func (h *AreasHandler) Nuevo(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Nueva área", recursoAreas.accionNuevo(), dto.AreaForm{}, nil)
}

// Crear POST /coordinador/areas/nuevo/
func (h *AreasHandler) Crear(c *gin.Context) {
	var form dto.AreaForm
	verr := bindForm(c, h.v, &form)
	recursoAreas.guardar(c, verr,
		func() error {
			_, err := h.svc.Crear(c.Request.Context(), form)
			return err
		},
		recursoAreas.msg.creado, recursoAreas.msg.errorCrear,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Nueva área", recursoAreas.accionNuevo(), form, verr)
		})
}

// Editar GET /coordinador/areas/editar/:id/
func (h *AreasHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	form := dto.AreaForm{Nombre: e.Nombre, Obligatoria: e.Obligatoria}
	h.renderForm(c, http.StatusOK, "Editar área", recursoAreas.accionEditar(id), form, nil)
}

// Actualizar POST /coordinador/areas/editar/:id/
func (h *AreasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	var form dto.AreaForm
	verr := bindForm(c, h.v, &form)
	recursoAreas.guardar(c, verr,
		func() error {
			_, err := h.svc.Actualizar(c.Request.Context(), id, form)
			return err
		},
		recursoAreas.msg.actualizado, recursoAreas.msg.errorActualizar,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Editar área", recursoAreas.accionEditar(id), form, verr)
		})
}

// Eliminar POST /coordinador/areas/eliminar/:id/
func (h *AreasHandler) Eliminar(c *gin.Context) {
	recursoAreas.eliminar(c, func(id uint) error {
		return h.svc.Eliminar(c.Request.Context(), id)
	})
}

func (h *AreasHandler) renderForm(c *gin.Context, status int, titulo, accion string, form dto.AreaForm, verr *apperror.ValidationError) {
	recursoAreas.renderForm(c, status, titulo, accion, form, verr, nil)
}
