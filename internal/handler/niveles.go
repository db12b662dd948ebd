package handler

import (
	"net/http"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/validation"

	"github.com/gin-gonic/gin"
)

var recursoNiveles = recurso{
	ruta:      "/coordinador/niveles/",
	plantilla: "niveles",
	titulo:    "Niveles educativos",
	msg: mensajes{
		creado:          "Nivel Educativo creado correctamente.",
		errorCrear:      "Error al crear el nivel educativo.",
		actualizado:     "Nivel Educativo actualizado correctamente.",
		errorActualizar: "Error al actualizar el nivel educativo.",
		eliminado:       "Nivel Educativo eliminado correctamente.",
	},
}

type NivelesHandler struct {
	svc service.NivelService
	v   *validation.Validator
}

func NewNivelesHandler(svc service.NivelService, v *validation.Validator) *NivelesHandler {
	return &NivelesHandler{svc: svc, v: v}
}

// Listar GET /coordinador/niveles/
func (h *NivelesHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	recursoNiveles.renderLista(c, items)
}

// Nuevo GET /coordinador/niveles/nuevo/
func (h *NivelesHandler) Nuevo(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Nuevo nivel educativo", recursoNiveles.accionNuevo(), dto.NivelForm{}, nil)
}

// Crear POST /coordinador/niveles/nuevo/
func (h *NivelesHandler) Crear(c *gin.Context) {
	var form dto.NivelForm
	verr := bindForm(c, h.v, &form)
	recursoNiveles.guardar(c, verr,
		func() error {
			_, err := h.svc.Crear(c.Request.Context(), form)
			return err
		},
		recursoNiveles.msg.creado, recursoNiveles.msg.errorCrear,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Nuevo nivel educativo", recursoNiveles.accionNuevo(), form, verr)
		})
}

// Editar GET /coordinador/niveles/editar/:id/
func (h *NivelesHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	form := dto.NivelForm{Nombre: e.Nombre}
	h.renderForm(c, http.StatusOK, "Editar nivel educativo", recursoNiveles.accionEditar(id), form, nil)
}

// Actualizar POST /coordinador/niveles/editar/:id/
func (h *NivelesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Obtener(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	var form dto.NivelForm
	verr := bindForm(c, h.v, &form)
	recursoNiveles.guardar(c, verr,
		func() error {
			_, err := h.svc.Actualizar(c.Request.Context(), id, form)
			return err
		},
		recursoNiveles.msg.actualizado, recursoNiveles.msg.errorActualizar,
		func(status int, verr *apperror.ValidationError) {
			h.renderForm(c, status, "Editar nivel educativo", recursoNiveles.accionEditar(id), form, verr)
		})
}

// Eliminar POST /coordinador/niveles/eliminar/:id/
func (h *NivelesHandler) Eliminar(c *gin.Context) {
	recursoNiveles.eliminar(c, func(id uint) error {
		return h.svc.Eliminar(c.Request.Context(), id)
	})
}

func (h *NivelesHandler) renderForm(c *gin.Context, status int, titulo, accion string, form dto.NivelForm, verr *apperror.ValidationError) {
	recursoNiveles.renderForm(c, status, titulo, accion, form, verr, nil)
}
