package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Raiz mantida como verificação rápida de que o servidor subiu.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Servidor funcional!")
}

// Health usada para /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
