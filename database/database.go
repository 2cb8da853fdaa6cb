package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/config"
	"github.com/catsflow-servers/sistemakids/models"
)

const (
	connectAttempts = 5
	connectInterval = 8 * time.Second
)

// Connect abre a conexão com o Postgres, insistindo algumas vezes antes de
// desistir (o banco pode subir depois do servidor), e roda as migrações.
// O handle é devolvido para ser injetado nos handlers; não há global.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("erro ao conectar ao banco de dados: %v", err)
		if attempt < connectAttempts {
			log.Printf("tentando reconectar em %s...", connectInterval)
			time.Sleep(connectInterval)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate cria as tabelas e garante as linhas de configuração padrão.
// Exportada para os testes reaproveitarem com o driver sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Aluno{},
		&models.Chamada{},
		&models.AlunoChamada{},
		&models.Usuario{},
		&models.Token{},
		&models.LogUser{},
		&models.Config{},
		&models.MaterialGroup{},
		&models.Material{},
	); err != nil {
		return err
	}

	// semente: flag que limita uma chamada por turma por dia
	seed := models.Config{Key: models.ConfigLimitarChamadasPorDia, Value: "false"}
	return db.Where(models.Config{Key: seed.Key}).FirstOrCreate(&seed).Error
}
