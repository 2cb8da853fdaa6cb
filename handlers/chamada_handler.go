package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
	"github.com/catsflow-servers/sistemakids/utils"
)

type ChamadaHandler struct {
	db *gorm.DB
}

func NewChamadaHandler(db *gorm.DB) *ChamadaHandler { return &ChamadaHandler{db: db} }

type chamadaAlunoPayload struct {
	Nome     string `json:"nome"`
	Presente string `json:"presente"` // presente | ausente; vazio vira ausente
}

type registrarChamadaPayload struct {
	Professor  string                `json:"professor"`
	TituloAula string                `json:"tituloAula"`
	DataAula   string                `json:"dataAula"` // ISO-8601
	Alunos     []chamadaAlunoPayload `json:"alunos"`
}

// POST /chamadas/register/:turma
func (h *ChamadaHandler) Register(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}

	var req registrarChamadaPayload
	if err := c.Bind(&req); err != nil {
		return handleErro(c, "Dados da chamada inválidos", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Professor) == "" {
		return handleErro(c, "Nome do professor é inválido", http.StatusBadRequest)
	}
	dataAula, err := utils.ParseISO(req.DataAula)
	if err != nil {
		return handleErro(c, "Data da aula é inválida", http.StatusBadRequest)
	}
	dataAula = dataAula.UTC()

	if configFlag(h.db, models.ConfigLimitarChamadasPorDia) {
		// Checagem feita antes do insert; duas requisições simultâneas
		// para o mesmo dia ainda podem passar as duas (isolamento padrão).
		inicio, fim := utils.DayBounds(dataAula)
		var existentes int64
		if err := h.db.Model(&models.Chamada{}).
			Where("turma = ? AND data >= ? AND data < ?", turma, inicio, fim).
			Count(&existentes).Error; err != nil {
			log.Println("Erro ao verificar chamadas do dia:", err)
			return handleErro(c, "Erro ao salvar chamada "+turmaLabel(turma), http.StatusInternalServerError)
		}
		if existentes > 0 {
			return handleErro(c, "Já existe uma chamada registrada para esta turma neste dia.", http.StatusBadRequest)
		}
	}

	chamada := models.Chamada{
		Turma:     turma,
		Data:      dataAula,
		Professor: req.Professor,
		Titulo:    req.TituloAula,
	}
	for _, aluno := range req.Alunos {
		presenca := aluno.Presente
		if presenca == "" {
			presenca = models.PresencaAusente
		}
		chamada.Alunos = append(chamada.Alunos, models.AlunoChamada{
			NomeAluno: aluno.Nome,
			Presenca:  presenca,
		})
	}

	// chamada + presenças saem na mesma transação
	if err := h.db.Create(&chamada).Error; err != nil {
		log.Println("Erro ao salvar chamada:", err)
		return handleErro(c, "Erro ao salvar chamada "+turmaLabel(turma), http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Chamada " + turmaLabel(turma) + " salva com sucesso"})
}

// GET /chamadas/gerenciar/:turma?ordem=antigas&professor=
func (h *ChamadaHandler) List(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}

	tx := h.db.Where("turma = ?", turma)
	order := "data DESC"
	if c.QueryParam("ordem") == "antigas" {
		order = "data ASC"
	}
	if professor := strings.TrimSpace(c.QueryParam("professor")); professor != "" {
		tx = tx.Where("professor = ?", professor)
	}

	var chamadas []models.Chamada
	if err := tx.Order(order).Find(&chamadas).Error; err != nil {
		log.Println("Erro ao buscar chamadas:", err)
		return handleErro(c, "Erro ao buscar chamadas "+turmaLabel(turma), http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, chamadas)
}

// GET /chamadas/gerenciar/:turma/:id
func (h *ChamadaHandler) View(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}
	id, ok := parseID(c)
	if !ok {
		return handleErro(c, "ID inválido", http.StatusBadRequest)
	}

	var chamada models.Chamada
	err := h.db.Preload("Alunos").Where("turma = ?", turma).First(&chamada, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return handleErro(c, "Chamada não encontrada", http.StatusNotFound)
		}
		return handleErro(c, "Erro ao buscar chamada", http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"chamada": chamada,
		"alunos":  chamada.Alunos,
	})
}

type atualizarChamadaPayload struct {
	Chamada struct {
		Data      string `json:"Data"`
		Professor string `json:"Professor"`
		Titulo    string `json:"Titulo"`
	} `json:"chamada"`
	Alunos []struct {
		ID       uint   `json:"id"`
		Presenca string `json:"Presenca"`
	} `json:"alunos"`
}

// PUT /chamadas/update/:turma/:id
func (h *ChamadaHandler) Update(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}
	id, ok := parseID(c)
	if !ok {
		return handleErro(c, "ID inválido", http.StatusBadRequest)
	}

	var req atualizarChamadaPayload
	if err := c.Bind(&req); err != nil {
		return handleErro(c, "Dados da chamada inválidos", http.StatusBadRequest)
	}
	dataAula, err := utils.ParseISO(req.Chamada.Data)
	if err != nil {
		return handleErro(c, "Data da aula é inválida", http.StatusBadRequest)
	}

	var chamada models.Chamada
	if err := h.db.Where("turma = ?", turma).First(&chamada, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return handleErro(c, "Chamada não encontrada", http.StatusNotFound)
		}
		return handleErro(c, "Erro ao atualizar dados da chamada", http.StatusInternalServerError)
	}

	if err := h.db.Model(&chamada).Updates(map[string]any{
		"data":      dataAula.UTC(),
		"professor": req.Chamada.Professor,
		"titulo":    req.Chamada.Titulo,
	}).Error; err != nil {
		log.Println("Erro ao atualizar dados da chamada:", err)
		return handleErro(c, "Erro ao atualizar dados da chamada", http.StatusInternalServerError)
	}

	// presenças atualizadas em paralelo e aguardadas juntas; a primeira
	// falha aborta o lote, sem rollback das que já passaram
	g := new(errgroup.Group)
	for _, aluno := range req.Alunos {
		aluno := aluno
		g.Go(func() error {
			return h.db.Model(&models.AlunoChamada{}).
				Where("id = ?", aluno.ID).
				Update("presenca", aluno.Presenca).Error
		})
	}
	if err := g.Wait(); err != nil {
		log.Println("Erro ao atualizar presenças:", err)
		return handleErro(c, "Erro ao atualizar dados da chamada", http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":        "Chamada e alunos atualizados com sucesso",
		"updatedChamada": chamada,
	})
}

// DELETE /chamadas/excluir/:turma/:id
func (h *ChamadaHandler) Delete(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}
	id, ok := parseID(c)
	if !ok {
		return handleErro(c, "ID inválido", http.StatusBadRequest)
	}

	var chamada models.Chamada
	if err := h.db.Where("turma = ?", turma).First(&chamada, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return handleErro(c, "Chamada não encontrada.", http.StatusNotFound)
		}
		return handleErro(c, "Erro ao excluir chamada.", http.StatusInternalServerError)
	}

	// as presenças saem primeiro por conta da posse referencial
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chamada_id = ?", chamada.ID).Delete(&models.AlunoChamada{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chamada).Error
	})
	if err != nil {
		log.Println("Erro ao excluir chamada:", err)
		return handleErro(c, "Erro ao excluir chamada.", http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Chamada excluída com sucesso."})
}

// GET /chamadas/last/:turma
func (h *ChamadaHandler) Last(c echo.Context) error {
	turma, ok := parseTurma(c.Param("turma"))
	if !ok {
		return handleErro(c, "Turma desconhecida", http.StatusNotFound)
	}

	var chamada models.Chamada
	err := h.db.Where("turma = ?", turma).Order("id DESC").First(&chamada).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Nenhuma chamada encontrada"})
		}
		return handleErro(c, "Erro ao buscar a última chamada "+turmaLabel(turma), http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, chamada)
}
