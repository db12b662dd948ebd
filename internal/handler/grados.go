package handler

import (
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

var recursoGrados = recurso{
	ruta:      "/coordinador/grados/",
	plantilla: "grados",
	titulo:    "Grados",
	msg: mensajes{
		creado:          "Grado creado correctamente.",
		errorCrear:      "Error al crear el grado.",
		actualizado:     "Grado actualizado correctamente.",
		errorActualizar: "Error al actualizar el grado.",
		eliminado:       "Grado eliminado correctamente.",
	},
}

type GradosHandler struct {
	svc     service.GradoService
	niveles service.NivelService
	v       *validation.Validator
}

func NewGradosHandler(svc service.GradoService, niveles service.NivelService, v *validation.Validator) *GradosHandler {
	return &GradosHandler{svc: svc, niveles: niveles, v: v}
}

// Listar GET /coordinador/grados/
func (h *GradosHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	recursoGrados.renderLista(c, items)
}

// opciones loads the parent choices of the form.
func (h *GradosHandler) opciones(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	niveles, err := h.niveles.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{"Niveles": niveles}, nil
}

// Nuevo GET /coordinador/grados/nuevo/
func (h *GradosHandler) Nuevo(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Nuevo grado", recursoGrados.accionNuevo(), dto.GradoForm{}, nil)
}

// Crear POST /coordinador/grados/nuevo/
func (h *GradosHandler) Crear(c *gin.Context) {
	var form dto.GradoForm
	verr := bindForm(c, h.v, &form)
	recursoGrados.guardar(c, verr,
		func() error {
			_, err := h.svc.Crear(c.Request.Context(), form)
			return err
		},
		recursoGrados.msg.creado, recursoGrados.msg.errorCrear,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Nuevo grado", recursoGrados.accionNuevo(), form, verr)
		})
}

// Editar GET /coordinador/grados/editar/:id/
func (h *GradosHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	form := dto.GradoForm{NivelID: e.NivelID, Nombre: e.Nombre}
	h.renderForm(c, http.StatusOK, "Editar grado", recursoGrados.accionEditar(id), form, nil)
}

// Actualizar POST /coordinador/grados/editar/:id/
func (h *GradosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	var form dto.GradoForm
	verr := bindForm(c, h.v, &form)
	recursoGrados.guardar(c, verr,
		func() error {
			_, err := h.svc.Actualizar(c.Request.Context(), id, form)
			return err
		},
		recursoGrados.msg.actualizado, recursoGrados.msg.errorActualizar,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Editar grado", recursoGrados.accionEditar(id), form, verr)
		})
}

// Eliminar POST /coordinador/grados/eliminar/:id/
func (h *GradosHandler) Eliminar(c *gin.Context) {
	recursoGrados.eliminar(c, func(id uint) error {
		return h.svc.Eliminar(c.Request.Context(), id)
	})
}

func (h *GradosHandler) renderForm(c *gin.Context, status int, titulo, accion string, form dto.GradoForm, verr *apperror.ValidationError) {
	extra, err := h.opciones(c)
	if err != nil {
		handleError(c, err)
		return
	}
	recursoGrados.renderForm(c, status, titulo, accion, form, verr, extra)
}
