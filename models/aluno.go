package models

import "time"

// Turmas conhecidas. As chamadas só resolvem se a turma do aluno
// for uma dessas duas.
const (
	TurmaJuniores = "Juniores"
	TurmaMaternal = "Maternal"
)

// Cadastro de aluno. DataNascimento fica como string ISO já normalizada
// (horário fixo 21:18:00.000Z) para manter o formato que o front espera.
type Aluno struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Nome           string `json:"nome" gorm:"size:120;not null"`
	Responsavel    string `json:"responsavel" gorm:"size:120"`
	Sexo           string `json:"sexo" gorm:"size:10"` // M | F
	DataNascimento string `json:"dataNascimento" gorm:"size:30"`
	Observacao     string `json:"observacao" gorm:"type:text"`
	Turma          string `json:"turma" gorm:"size:20;index;not null"`
	Idade          string `json:"idade" gorm:"size:10"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
