package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func registrarAluno(t *testing.T, e *echo.Echo, aluno map[string]any) map[string]any {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/alunos/register", aluno)
	if rec.Code != http.StatusOK {
		t.Fatalf("registro do aluno falhou: %d %s", rec.Code, rec.Body.String())
	}
	var out map[string]any
	decode(t, rec, &out)
	return out
}

func TestRegistrarAluno(t *testing.T) {
	e, _ := newTestApp(t)

	out := registrarAluno(t, e, map[string]any{
		"nome":           "Ana",
		"sexo":           "F",
		"dataNascimento": "01/05/2019",
		"turma":          "Maternal",
		"responsavel":    "Rita",
		"idade":          5,
	})

	if id, ok := out["id"].(float64); !ok || id <= 0 {
		t.Fatalf("id gerado inválido: %v", out["id"])
	}
	if out["dataNascimento"] != "2019-05-01T21:18:00.000Z" {
		t.Errorf("data não normalizada: %v", out["dataNascimento"])
	}
	if out["idade"] != "5" {
		t.Errorf("idade numérica deveria virar string: %v", out["idade"])
	}
}

func TestRegistrarAlunoDataInvalida(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/alunos/register", map[string]any{
		"nome":           "Ana",
		"sexo":           "F",
		"dataNascimento": "2019-05-01", // formato errado, tem que ser DD/MM/YYYY
		"turma":          "Maternal",
		"responsavel":    "Rita",
		"idade":          "5",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, veio %d", rec.Code)
	}
}

func TestBuscarAlunosPorTurma(t *testing.T) {
	e, _ := newTestApp(t)

	for _, a := range []map[string]any{
		{"nome": "Bruno", "sexo": "M", "dataNascimento": "10/03/2015", "turma": "Juniores", "responsavel": "Laura", "idade": "9"},
		{"nome": "Alice", "sexo": "F", "dataNascimento": "22/08/2016", "turma": "Juniores", "responsavel": "Paulo", "idade": "8"},
		{"nome": "Caio", "sexo": "M", "dataNascimento": "05/05/2021", "turma": "Maternal", "responsavel": "Rita", "idade": "3"},
	} {
		registrarAluno(t, e, a)
	}

	var juniores []map[string]any
	rec := doJSON(t, e, http.MethodGet, "/alunos/search/juniores", nil)
	decode(t, rec, &juniores)
	if len(juniores) != 2 {
		t.Fatalf("esperados 2 juniores, vieram %d", len(juniores))
	}
	if juniores[0]["nome"] != "Alice" || juniores[1]["nome"] != "Bruno" {
		t.Errorf("ordem padrão A-Z errada: %v, %v", juniores[0]["nome"], juniores[1]["nome"])
	}

	rec = doJSON(t, e, http.MethodGet, "/alunos/search/juniores?ordem=Z-A", nil)
	decode(t, rec, &juniores)
	if juniores[0]["nome"] != "Bruno" {
		t.Errorf("ordem Z-A errada: %v", juniores[0]["nome"])
	}

	rec = doJSON(t, e, http.MethodGet, "/alunos/search/juniores?sexo=F", nil)
	decode(t, rec, &juniores)
	if len(juniores) != 1 || juniores[0]["nome"] != "Alice" {
		t.Errorf("filtro por sexo errado: %v", juniores)
	}

	if rec := doJSON(t, e, http.MethodGet, "/alunos/search/bercario", nil); rec.Code != http.StatusNotFound {
		t.Errorf("turma desconhecida deveria dar 404, veio %d", rec.Code)
	}
}

func TestAtualizarAluno(t *testing.T) {
	e, _ := newTestApp(t)

	criado := registrarAluno(t, e, map[string]any{
		"nome": "Ana", "sexo": "F", "dataNascimento": "01/05/2019",
		"turma": "Maternal", "responsavel": "Rita", "idade": "5",
	})
	id := int(criado["id"].(float64))

	rec := doJSON(t, e, http.MethodPut, "/alunos/update/"+itoa(id), map[string]any{
		"nome": "Ana Clara", "sexo": "F", "dataNascimento": "01/05/2019",
		"turma": "Juniores", "responsavel": "Rita", "idade": 6,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update falhou: %d %s", rec.Code, rec.Body.String())
	}
	var out map[string]any
	decode(t, rec, &out)
	if out["nome"] != "Ana Clara" || out["turma"] != "Juniores" || out["idade"] != "6" {
		t.Errorf("campos não atualizados: %v", out)
	}

	// campo obrigatório faltando
	rec = doJSON(t, e, http.MethodPut, "/alunos/update/"+itoa(id), map[string]any{
		"nome": "Ana", "sexo": "F", "dataNascimento": "01/05/2019",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("update sem campos obrigatórios deveria dar 400, veio %d", rec.Code)
	}
}

func TestExcluirAluno(t *testing.T) {
	e, _ := newTestApp(t)

	criado := registrarAluno(t, e, map[string]any{
		"nome": "Ana", "sexo": "F", "dataNascimento": "01/05/2019",
		"turma": "Maternal", "responsavel": "Rita", "idade": "5",
	})
	id := int(criado["id"].(float64))

	if rec := doJSON(t, e, http.MethodDelete, "/alunos/excluir/"+itoa(id), nil); rec.Code != http.StatusOK {
		t.Fatalf("exclusão falhou: %d", rec.Code)
	}
	if rec := doJSON(t, e, http.MethodGet, "/alunos/gerenciar/"+itoa(id), nil); rec.Code != http.StatusNotFound {
		t.Errorf("aluno excluído ainda visível: %d", rec.Code)
	}
	if rec := doJSON(t, e, http.MethodDelete, "/alunos/excluir/"+itoa(id), nil); rec.Code != http.StatusNotFound {
		t.Errorf("excluir de novo deveria dar 404, veio %d", rec.Code)
	}
}
