package handlers_test

import (
	"net/http"
	"testing"
)

func TestRaizEHealth(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(t, e, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "Servidor funcional!" {
		t.Fatalf("raiz inesperada: %d %q", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	var resp map[string]string
	decode(t, rec, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("health = %+v", resp)
	}
}
