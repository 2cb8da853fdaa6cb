package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/catsflow-servers/sistemakids/config"
	"github.com/catsflow-servers/sistemakids/database"
	"github.com/catsflow-servers/sistemakids/routes"
)

const testJWTSecret = "segredo-de-teste"

func itoa(n int) string { return strconv.Itoa(n) }

// newTestApp sobe o servidor completo (rotas reais) sobre um sqlite em
// memória, com uma conexão só para o banco não se multiplicar.
func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("obtendo *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando schema de teste: %v", err)
	}

	e := echo.New()
	routes.Register(e, db, &config.Config{JWTSecret: testJWTSecret})
	return e, db
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("serializando corpo: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decodificando resposta %q: %v", rec.Body.String(), err)
	}
}
