package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/catsflow-servers/sistemakids/config"
	"github.com/catsflow-servers/sistemakids/database"
	"github.com/catsflow-servers/sistemakids/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis de ambiente")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("erro ao conectar ao banco de dados: %v", err)
	}
	log.Println("Conectado ao banco de dados")

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, db, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("Servidor funcional em http://0.0.0.0%s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
