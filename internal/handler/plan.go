package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct{ svc service.PlanService }

func NewPlanHandler(svc service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// DescargarPDF GET /coordinador/plan-estudios/pdf/
func (h *PlanHandler) DescargarPDF(c *gin.Context) {
	plan, err := h.svc.Construir(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	now := time.Now()
	var buf bytes.Buffer
	if err := infra.WritePlanEstudiosPDF(&buf, plan, now); err != nil {
		handleError(c, fmt.Errorf("generar PDF: %w", err))
		return
	}

	nombre := fmt.Sprintf("plan-de-estudios-%s.pdf", now.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
