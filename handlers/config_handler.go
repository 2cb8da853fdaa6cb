package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
	"github.com/catsflow-servers/sistemakids/utils"
)

type ConfigHandler struct {
	db *gorm.DB
}

func NewConfigHandler(db *gorm.DB) *ConfigHandler { return &ConfigHandler{db: db} }

// GET /config/view
func (h *ConfigHandler) View(c echo.Context) error {
	var configs []models.Config
	if err := h.db.Find(&configs).Error; err != nil {
		log.Println("Erro ao obter configurações:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Falha ao obter as configurações"})
	}
	return c.JSON(http.StatusOK, configs)
}

type editarConfigPayload struct {
	Value flexString `json:"value"`
}

// PUT /config/edit/:id
func (h *ConfigHandler) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "ID inválido"})
	}
	var req editarConfigPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Dados inválidos"})
	}

	var cfg models.Config
	if err := h.db.First(&cfg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Configuração não encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Falha na atualização da configuração"})
	}

	cfg.Value = string(req.Value)
	cfg.UpdatedAt = utils.NowSaoPaulo()
	if err := h.db.Save(&cfg).Error; err != nil {
		log.Println("Erro ao atualizar configuração:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Falha na atualização da configuração"})
	}
	return c.JSON(http.StatusOK, cfg)
}
