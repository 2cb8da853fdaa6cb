package handlers

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/models"
)

var validate = validator.New()

// handleErro centraliza o log e a resposta de erro no formato
// {"error": mensagem} que o front espera.
func handleErro(c echo.Context, mensagem string, status int) error {
	log.Println(mensagem)
	return c.JSON(status, map[string]any{"error": mensagem})
}

func parseID(c echo.Context) (uint, bool) {
	n, err := strconv.Atoi(c.Param("id"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

// parseTurma resolve o segmento de rota para o nome canônico da turma.
func parseTurma(p string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "juniores":
		return models.TurmaJuniores, true
	case "maternal":
		return models.TurmaMaternal, true
	}
	return "", false
}

func turmaLabel(turma string) string {
	if turma == models.TurmaMaternal {
		return "do maternal"
	}
	return "dos juniores"
}

// flexString aceita string, número ou booleano no JSON; o front manda
// idade, userId e value de configuração de formas diferentes.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	raw := string(b)
	switch {
	case len(b) == 0 || raw == "null":
		*s = ""
		return nil
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	case raw == "true" || raw == "false":
		*s = flexString(raw)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

func (s flexString) Uint() (uint, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

// configFlag lê uma flag booleana da tabela de configuração; chave ausente
// ou valor não booleano contam como desligado.
func configFlag(db *gorm.DB, key string) bool {
	var cfg models.Config
	if err := db.Where("key = ?", key).First(&cfg).Error; err != nil {
		return false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(cfg.Value))
	return err == nil && v
}
