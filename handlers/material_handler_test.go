package handlers_test

import (
	"net/http"
	"testing"

	"github.com/catsflow-servers/sistemakids/models"
)

func TestGrupoDeMaterias(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/material/group/register", map[string]any{"turma": models.TurmaJuniores})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("grupo sem nome deveria dar 400, veio %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/material/group/register", map[string]any{
		"name":  "Histórias Bíblicas",
		"turma": models.TurmaJuniores,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("cadastro do grupo falhou: %d %s", rec.Code, rec.Body.String())
	}
	var grupo models.MaterialGroup
	decode(t, rec, &grupo)
	if grupo.ID == 0 || grupo.Disabled {
		t.Fatalf("grupo recém-criado inesperado: %+v", grupo)
	}

	rec = doJSON(t, e, http.MethodPost, "/material/group/register", map[string]any{
		"name":  "Músicas",
		"turma": models.TurmaMaternal,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("cadastro do segundo grupo falhou: %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/material/group/search?turma="+models.TurmaJuniores, nil)
	var grupos []models.MaterialGroup
	decode(t, rec, &grupos)
	if len(grupos) != 1 || grupos[0].Name != "Histórias Bíblicas" {
		t.Fatalf("filtro por turma inesperado: %+v", grupos)
	}

	// toggle sem booleano explícito é rejeitado
	rec = doJSON(t, e, http.MethodPut, "/material/group/toggle/"+itoa(int(grupo.ID)), map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("toggle sem disabled deveria dar 400, veio %d", rec.Code)
	}
	var erro map[string]string
	decode(t, rec, &erro)
	if erro["error"] != `Campo "disabled" deve ser um booleano` {
		t.Fatalf("mensagem = %q", erro["error"])
	}

	rec = doJSON(t, e, http.MethodPut, "/material/group/toggle/"+itoa(int(grupo.ID)), map[string]any{"disabled": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle falhou: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/material/group/search?status=desativado", nil)
	decode(t, rec, &grupos)
	if len(grupos) != 1 || grupos[0].ID != grupo.ID {
		t.Fatalf("busca por desativados inesperada: %+v", grupos)
	}

	rec = doJSON(t, e, http.MethodDelete, "/material/group/delete/"+itoa(int(grupo.ID)), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("exclusão do grupo falhou: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message      string               `json:"message"`
		DeletedGroup models.MaterialGroup `json:"deletedGroup"`
	}
	decode(t, rec, &resp)
	if resp.Message != "Grupo de matérias excluído com sucesso!" || resp.DeletedGroup.ID != grupo.ID {
		t.Fatalf("resposta da exclusão inesperada: %+v", resp)
	}

	rec = doJSON(t, e, http.MethodDelete, "/material/group/delete/"+itoa(int(grupo.ID)), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("excluir de novo deveria dar 404, veio %d", rec.Code)
	}
}

func TestMaterias(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(t, e, http.MethodPost, "/material/register", map[string]any{"turma": models.TurmaJuniores})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("matéria sem nome deveria dar 400, veio %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/material/register", map[string]any{
		"name":        "Arca de Noé",
		"description": "Atividade com recorte",
		"turma":       models.TurmaJuniores,
		"group":       "Histórias Bíblicas",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("cadastro da matéria falhou: %d %s", rec.Code, rec.Body.String())
	}
	var material models.Material
	decode(t, rec, &material)

	rec = doJSON(t, e, http.MethodPost, "/material/register", map[string]any{
		"name":  "Ciranda",
		"turma": models.TurmaMaternal,
		"group": "Músicas",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("cadastro da segunda matéria falhou: %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/material/search?grupo=Músicas", nil)
	var materiais []models.Material
	decode(t, rec, &materiais)
	if len(materiais) != 1 || materiais[0].Name != "Ciranda" {
		t.Fatalf("filtro por grupo inesperado: %+v", materiais)
	}

	rec = doJSON(t, e, http.MethodPut, "/material/toggle/"+itoa(int(material.ID)), map[string]any{"disabled": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle da matéria falhou: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, e, http.MethodGet, "/material/search?turma="+models.TurmaJuniores+"&status=desativado", nil)
	decode(t, rec, &materiais)
	if len(materiais) != 1 || materiais[0].ID != material.ID {
		t.Fatalf("busca por desativadas inesperada: %+v", materiais)
	}

	rec = doJSON(t, e, http.MethodDelete, "/material/delete/"+itoa(int(material.ID)), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("exclusão da matéria falhou: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message         string          `json:"message"`
		DeletedMaterial models.Material `json:"deletedMaterial"`
	}
	decode(t, rec, &resp)
	if resp.Message != "Matéria excluída com sucesso!" || resp.DeletedMaterial.Name != "Arca de Noé" {
		t.Fatalf("resposta da exclusão inesperada: %+v", resp)
	}

	rec = doJSON(t, e, http.MethodPut, "/material/toggle/9999", map[string]any{"disabled": false})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("toggle de matéria inexistente deveria dar 404, veio %d", rec.Code)
	}
}
