package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Inicio GET /
func Inicio(c *gin.Context) {
	renderPage(c, http.StatusOK, "inicio", gin.H{"Titulo": "Inicio"})
}

// Panel renders the landing page of a non-coordinator role.
func Panel(titulo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderPage(c, http.StatusOK, "panel", gin.H{"Titulo": titulo})
	}
}

// PanelCoordinador GET /panel-coordinador/
func PanelCoordinador(c *gin.Context) {
	renderPage(c, http.StatusOK, "panel_coordinador", gin.H{"Titulo": "Panel del Coordinador Académico"})
}
