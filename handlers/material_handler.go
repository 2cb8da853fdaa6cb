package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
)

type MaterialHandler struct {
	db *gorm.DB
}

func NewMaterialHandler(db *gorm.DB) *MaterialHandler { return &MaterialHandler{db: db} }

type grupoPayload struct {
	Name  string `json:"name" validate:"required"`
	Turma string `json:"turma"`
}

// POST /material/group/register
func (h *MaterialHandler) GroupRegister(c echo.Context) error {
	var req grupoPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Dados do grupo inválidos"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Nome do grupo é obrigatório"})
	}

	grupo := models.MaterialGroup{Name: req.Name, Turma: req.Turma}
	if err := h.db.Create(&grupo).Error; err != nil {
		log.Println("Erro ao criar grupo de matérias:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao criar o grupo de matérias"})
	}
	return c.JSON(http.StatusCreated, grupo)
}

// GET /material/group/search?turma=&status=
func (h *MaterialHandler) GroupSearch(c echo.Context) error {
	tx := h.db.Model(&models.MaterialGroup{})
	if turma := strings.TrimSpace(c.QueryParam("turma")); turma != "" {
		tx = tx.Where("turma = ?", turma)
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		tx = tx.Where("disabled = ?", status == "desativado")
	}

	var grupos []models.MaterialGroup
	if err := tx.Find(&grupos).Error; err != nil {
		log.Println("Erro ao buscar grupos de matérias:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar os grupos de matérias"})
	}
	return c.JSON(http.StatusOK, grupos)
}

type togglePayload struct {
	Disabled *bool `json:"disabled"`
}

// PUT /material/group/toggle/:id
func (h *MaterialHandler) GroupToggle(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "ID inválido"})
	}
	var req togglePayload
	if err := c.Bind(&req); err != nil || req.Disabled == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": `Campo "disabled" deve ser um booleano`})
	}

	var grupo models.MaterialGroup
	if err := h.db.First(&grupo, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Grupo de matérias não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao atualizar o status do grupo de matérias"})
	}
	if err := h.db.Model(&grupo).Update("disabled", *req.Disabled).Error; err != nil {
		log.Println("Erro ao atualizar grupo de matérias:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao atualizar o status do grupo de matérias"})
	}
	return c.JSON(http.StatusOK, grupo)
}

// DELETE /material/group/delete/:id
func (h *MaterialHandler) GroupDelete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var grupo models.MaterialGroup
	if err := h.db.First(&grupo, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Grupo de matérias não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao excluir o grupo de matérias"})
	}
	if err := h.db.Delete(&grupo).Error; err != nil {
		log.Println("Erro ao excluir grupo de matérias:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao excluir o grupo de matérias"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Grupo de matérias excluído com sucesso!", "deletedGroup": grupo})
}

type materialPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Turma       string `json:"turma"`
	Group       string `json:"group"`
}

// POST /material/register
func (h *MaterialHandler) Register(c echo.Context) error {
	var req materialPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Dados da matéria inválidos"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Nome da matéria é obrigatório"})
	}

	material := models.Material{
		Name:        req.Name,
		Description: req.Description,
		Turma:       req.Turma,
		Group:       req.Group,
	}
	if err := h.db.Create(&material).Error; err != nil {
		log.Println("Erro ao criar matéria:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao criar a matéria"})
	}
	return c.JSON(http.StatusCreated, material)
}

// GET /material/search?turma=&status=&grupo=
func (h *MaterialHandler) Search(c echo.Context) error {
	tx := h.db.Model(&models.Material{})
	if turma := strings.TrimSpace(c.QueryParam("turma")); turma != "" {
		tx = tx.Where("turma = ?", turma)
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		tx = tx.Where("disabled = ?", status == "desativado")
	}
	if grupo := strings.TrimSpace(c.QueryParam("grupo")); grupo != "" {
		tx = tx.Where(`"group" = ?`, grupo)
	}

	var materiais []models.Material
	if err := tx.Find(&materiais).Error; err != nil {
		log.Println("Erro ao buscar matérias:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar as matérias"})
	}
	return c.JSON(http.StatusOK, materiais)
}

// PUT /material/toggle/:id
func (h *MaterialHandler) Toggle(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "ID inválido"})
	}
	var req togglePayload
	if err := c.Bind(&req); err != nil || req.Disabled == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": `Campo "disabled" deve ser um booleano`})
	}

	var material models.Material
	if err := h.db.First(&material, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Matéria não encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao atualizar o status da matéria"})
	}
	if err := h.db.Model(&material).Update("disabled", *req.Disabled).Error; err != nil {
		log.Println("Erro ao atualizar o status da matéria:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao atualizar o status da matéria"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Status da matéria atualizado com sucesso"})
}

// DELETE /material/delete/:id
func (h *MaterialHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var material models.Material
	if err := h.db.First(&material, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Matéria não encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao excluir a matéria"})
	}
	if err := h.db.Delete(&material).Error; err != nil {
		log.Println("Erro ao excluir a matéria:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao excluir a matéria"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Matéria excluída com sucesso!", "deletedMaterial": material})
}
