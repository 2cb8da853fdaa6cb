package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
	"github.com/catsflow-servers/sistemakids/utils"
)

type AlunoHandler struct {
	db *gorm.DB
}

func NewAlunoHandler(db *gorm.DB) *AlunoHandler { return &AlunoHandler{db: db} }

type alunoPayload struct {
	Nome           string     `json:"nome" validate:"required"`
	Responsavel    string     `json:"responsavel" validate:"required"`
	Sexo           string     `json:"sexo" validate:"required"`
	DataNascimento string     `json:"dataNascimento" validate:"required"` // DD/MM/YYYY
	Observacao     string     `json:"observacao"`
	Turma          string     `json:"turma" validate:"required"`
	Idade          flexString `json:"idade" validate:"required"`
}

// POST /alunos/register
func (h *AlunoHandler) Register(c echo.Context) error {
	var req alunoPayload
	if err := c.Bind(&req); err != nil {
		return handleErro(c, "Dados do aluno inválidos", http.StatusBadRequest)
	}

	dataISO, err := utils.ConvertDateToISO(strings.TrimSpace(req.DataNascimento))
	if err != nil {
		return handleErro(c, "Data de nascimento inválida", http.StatusBadRequest)
	}

	aluno := models.Aluno{
		Nome:           req.Nome,
		Responsavel:    req.Responsavel,
		Sexo:           req.Sexo,
		DataNascimento: dataISO,
		Observacao:     req.Observacao,
		Turma:          req.Turma,
		Idade:          string(req.Idade),
	}
	if err := h.db.Create(&aluno).Error; err != nil {
		log.Println("Erro ao registrar aluno:", err)
		return handleErro(c, "Erro para registrar alunos.", http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, aluno)
}

// GET /alunos/search/:turma?sexo=&ordem=A-Z|Z-A
func (h *AlunoHandler) Search(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}

	tx := h.db.Where("turma = ?", turma)
	if sexo := strings.TrimSpace(c.QueryParam("sexo")); sexo != "" {
		tx = tx.Where("sexo = ?", sexo)
	}
	order := "nome ASC"
	if c.QueryParam("ordem") == "Z-A" {
		order = "nome DESC"
	}

	var alunos []models.Aluno
	if err := tx.Order(order).Find(&alunos).Error; err != nil {
		log.Println("Erro ao buscar alunos:", err)
		return handleErro(c, "Erro ao buscar alunos "+turmaLabel(turma)+".", http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, alunos)
}

// GET /alunos/gerenciar/:id
func (h *AlunoHandler) View(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var aluno models.Aluno
	if err := h.db.First(&aluno, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Aluno não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Erro ao buscar informações do aluno"})
	}
	return c.JSON(http.StatusOK, aluno)
}

// PUT /alunos/update/:id
func (h *AlunoHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "ID inválido"})
	}

	var req alunoPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Dados do aluno inválidos"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Todos os campos obrigatórios devem ser preenchidos"})
	}

	dataISO, err := utils.ConvertDateToISO(strings.TrimSpace(req.DataNascimento))
	if err != nil {
		return handleErro(c, "Data de nascimento inválida", http.StatusBadRequest)
	}

	var aluno models.Aluno
	if err := h.db.First(&aluno, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Aluno não encontrado"})
		}
		return handleErro(c, "Erro ao atualizar dados do aluno", http.StatusInternalServerError)
	}

	aluno.Nome = req.Nome
	aluno.Sexo = req.Sexo
	aluno.Idade = string(req.Idade)
	aluno.Responsavel = req.Responsavel
	aluno.DataNascimento = dataISO
	aluno.Observacao = req.Observacao
	aluno.Turma = req.Turma
	if err := h.db.Save(&aluno).Error; err != nil {
		log.Println("Erro ao atualizar dados do aluno:", err)
		return handleErro(c, "Erro ao atualizar dados do aluno", http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, aluno)
}

// DELETE /alunos/excluir/:id
func (h *AlunoHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return handleErro(c, "ID inválido", http.StatusBadRequest)
	}

	var aluno models.Aluno
	if err := h.db.First(&aluno, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return handleErro(c, "Aluno não encontrado.", http.StatusNotFound)
		}
		return handleErro(c, "Erro ao excluir aluno.", http.StatusInternalServerError)
	}

	if err := h.db.Delete(&aluno).Error; err != nil {
		log.Println("Erro ao excluir aluno:", err)
		return handleErro(c, "Erro ao excluir aluno.", http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Aluno excluído com sucesso."})
}
