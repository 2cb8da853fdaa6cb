package handlers_test

import (
	"net/http"
	"testing"

	"github.com/catsflow-servers/sistemakids/models"
)

func TestConfiguracoes(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(t, e, http.MethodGet, "/config/view", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var configs []models.Config
	decode(t, rec, &configs)
	if len(configs) != 1 {
		t.Fatalf("esperada 1 configuração semeada, veio %d", len(configs))
	}
	flag := configs[0]
	if flag.Key != models.ConfigLimitarChamadasPorDia || flag.Value != "false" {
		t.Fatalf("configuração semeada inesperada: %+v", flag)
	}

	// o valor pode chegar como booleano JSON; fica gravado como texto
	rec = doJSON(t, e, http.MethodPut, "/config/edit/"+itoa(int(flag.ID)), map[string]any{"value": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("edição falhou: %d %s", rec.Code, rec.Body.String())
	}
	var editada models.Config
	decode(t, rec, &editada)
	if editada.Value != "true" {
		t.Fatalf("value = %q, esperado \"true\"", editada.Value)
	}
	if editada.UpdatedAt == "" {
		t.Fatal("edição não carimbou updatedAt")
	}

	rec = doJSON(t, e, http.MethodGet, "/config/view", nil)
	decode(t, rec, &configs)
	if configs[0].Value != "true" {
		t.Fatalf("valor persistido = %q", configs[0].Value)
	}

	rec = doJSON(t, e, http.MethodPut, "/config/edit/9999", map[string]any{"value": "false"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("configuração inexistente deveria dar 404, veio %d", rec.Code)
	}
	var erro map[string]string
	decode(t, rec, &erro)
	if erro["error"] != "Configuração não encontrada" {
		t.Fatalf("mensagem = %q", erro["error"])
	}
}
