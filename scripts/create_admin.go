// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/config"
	"github.com/catsflow-servers/sistemakids/database"
	"github.com/catsflow-servers/sistemakids/models"
)

// Semeia o primeiro usuário admin; depois troque a senha pelo próprio
// sistema (/auth/change/password/user).
func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("erro ao conectar ao banco de dados: %v", err)
	}

	usuario := "admin"
	senha := "1234"

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("erro ao gerar hash da senha: %v", err)
	}

	var existente models.Usuario
	if err := db.Where(`"user" = ?`, usuario).First(&existente).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("erro ao consultar usuários: %v", err)
		}
	} else {
		fmt.Println("já existe um usuário com o login:", usuario)
		os.Exit(0)
	}

	novo := models.Usuario{
		Nome:       "Administrador",
		User:       usuario,
		Password:   string(hash),
		Permission: "admin",
	}
	if err := db.Create(&novo).Error; err != nil {
		log.Fatalf("erro ao criar admin: %v", err)
	}

	fmt.Println("Usuário admin criado com sucesso")
	fmt.Println("  login:", usuario)
	fmt.Println("  senha:", senha, "(troque depois do primeiro acesso)")
}
