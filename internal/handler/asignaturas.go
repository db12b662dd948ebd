package handler

import (
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

var recursoAsignaturas = recurso{
	ruta:      "/coordinador/asignaturas/",
	plantilla: "asignaturas",
	titulo:    "Asignaturas",
	msg: mensajes{
		creado:          "Asignatura creada correctamente.",
		errorCrear:      "Error al crear la asignatura.",
		actualizado:     "Asignatura actualizada correctamente.",
		errorActualizar: "Error al actualizar la asignatura.",
		eliminado:       "Asignatura eliminada correctamente.",
	},
}

type AsignaturasHandler struct {
	svc    service.AsignaturaService
	grados service.GradoService
	areas  service.AreaService
	v      *validation.Validator
}

func NewAsignaturasHandler(svc service.AsignaturaService, grados service.GradoService, areas service.AreaService, v *validation.Validator) *AsignaturasHandler {
	return &AsignaturasHandler{svc: svc, grados: grados, areas: areas, v: v}
}

// Listar GET /coordinador/asignaturas/
func (h *AsignaturasHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	recursoAsignaturas.renderLista(c, items)
}

// opciones loads the parent choices of the form.
func (h *AsignaturasHandler) opciones(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	grados, err := h.grados.Listar(ctx)
	if err != nil {
		return nil, err
	}
	areas, err := h.areas.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{"Grados": grados, "Areas": areas}, nil
}

// Nuevo GET /coordinador/asignaturas/nuevo/
func (h *AsignaturasHandler) Nuevo(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Nueva asignatura", recursoAsignaturas.accionNuevo(), dto.AsignaturaForm{}, nil)
}

// Crear POST /coordinador/asignaturas/nuevo/
func (h *AsignaturasHandler) Crear(c *gin.Context) {
	var form dto.AsignaturaForm
	verr := bindForm(c, h.v, &form)
	recursoAsignaturas.guardar(c, verr,
		func() error {
			_, err := h.svc.Crear(c.Request.Context(), form)
			return err
		},
		recursoAsignaturas.msg.creado, recursoAsignaturas.msg.errorCrear,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Nueva asignatura", recursoAsignaturas.accionNuevo(), form, verr)
		})
}

// Editar GET /coordinador/asignaturas/editar/:id/
func (h *AsignaturasHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	form := dto.AsignaturaForm{Nombre: e.Nombre, GradoID: e.GradoID, AreaID: e.AreaID}
	h.renderForm(c, http.StatusOK, "Editar asignatura", recursoAsignaturas.accionEditar(id), form, nil)
}

// Actualizar POST /coordinador/asignaturas/editar/:id/
func (h *AsignaturasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	var form dto.AsignaturaForm
	verr := bindForm(c, h.v, &form)
	recursoAsignaturas.guardar(c, verr,
		func() error {
			_, err := h.svc.Actualizar(c.Request.Context(), id, form)
			return err
		},
		recursoAsignaturas.msg.actualizado, recursoAsignaturas.msg.errorActualizar,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Editar asignatura", recursoAsignaturas.accionEditar(id), form, verr)
		})
}

// Eliminar POST /coordinador/asignaturas/eliminar/:id/
func (h *AsignaturasHandler) Eliminar(c *gin.Context) {
	recursoAsignaturas.eliminar(c, func(id uint) error {
		return h.svc.Eliminar(c.Request.Context(), id)
	})
}

func (h *AsignaturasHandler) renderForm(c *gin.Context, status int, titulo, accion string, form dto.AsignaturaForm, verr *apperror.ValidationError) {
	extra, err := h.opciones(c)
	if err != nil {
		handleError(c, err)
		return
	}
	recursoAsignaturas.renderForm(c, status, titulo, accion, form, verr, extra)
}
