package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
)

// Fachada de leitura para as telas de estatísticas; nenhuma rota aqui
// escreve no banco.
type StatisticsHandler struct {
	db *gorm.DB
}

func NewStatisticsHandler(db *gorm.DB) *StatisticsHandler { return &StatisticsHandler{db: db} }

// GET /statistics/alunos
func (h *StatisticsHandler) Alunos(c echo.Context) error {
	var alunos []models.Aluno
	if err := h.db.Find(&alunos).Error; err != nil {
		log.Println("Erro ao buscar dados dos alunos:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar dados dos alunos"})
	}
	return c.JSON(http.StatusOK, alunos)
}

// GET /statistics/chamada/:turma
func (h *StatisticsHandler) Chamada(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Turma desconhecida"})
	}

	var presencas []models.AlunoChamada
	err := h.db.Model(&models.AlunoChamada{}).
		Joins("JOIN chamadas ON chamadas.id = aluno_chamadas.chamada_id").
		Where("chamadas.turma = ?", turma).
		Find(&presencas).Error
	if err != nil {
		log.Println("Erro ao buscar presenças da turma:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar dados dos alunos da chamada"})
	}
	return c.JSON(http.StatusOK, presencas)
}

// GET /statistics/presenca/:id
// O histórico casa pelo nome denormalizado na chamada; aluno renomeado não
// enxerga as presenças antigas.
func (h *StatisticsHandler) Presenca(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "ID inválido"})
	}

	var aluno models.Aluno
	if err := h.db.First(&aluno, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Aluno não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar presenças"})
	}
	if aluno.Turma != models.TurmaJuniores && aluno.Turma != models.TurmaMaternal {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Turma desconhecida"})
	}

	var presencas []struct {
		Presenca string `json:"Presenca"`
	}
	err := h.db.Model(&models.AlunoChamada{}).
		Select("aluno_chamadas.presenca").
		Joins("JOIN chamadas ON chamadas.id = aluno_chamadas.chamada_id").
		Where("chamadas.turma = ? AND aluno_chamadas.nome_aluno = ?", aluno.Turma, aluno.Nome).
		Scan(&presencas).Error
	if err != nil {
		log.Println("Erro ao buscar presenças:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar presenças"})
	}
	return c.JSON(http.StatusOK, presencas)
}

// POST /statistics/user
// Divide as chamadas entre "minhas" e "dos outros" comparando o professor
// da chamada com o nome de exibição do usuário.
func (h *StatisticsHandler) User(c echo.Context) error {
	var req userIDPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "Dados inválidos"})
	}
	userID, ok := req.UserID.Uint()
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "ID do usuário não fornecido"})
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar informações das aulas"})
	}

	var minhas, outras []models.Chamada
	if err := h.db.Where("professor = ?", usuario.Nome).Find(&minhas).Error; err != nil {
		log.Println("Erro ao buscar aulas do usuário:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar informações das aulas"})
	}
	if err := h.db.Where("professor <> ?", usuario.Nome).Find(&outras).Error; err != nil {
		log.Println("Erro ao buscar demais aulas:", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "Erro ao buscar informações das aulas"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"minhasAulas": minhas,
		"outrasAulas": outras,
	})
}
