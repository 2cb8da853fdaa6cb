package models

import "time"

// Valores aceitos na coluna presenca.
const (
	PresencaPresente = "presente"
	PresencaAusente  = "ausente"
)

// Chamada de uma turma em um dia, com as presenças dos alunos como linhas
// filhas. As antigas tabelas separadas (juniores/maternal) viraram uma única
// com a coluna turma.
type Chamada struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Turma     string         `json:"turma" gorm:"size:20;index;not null"`
	Data      time.Time      `json:"Data" gorm:"index;not null"`
	Professor string         `json:"Professor" gorm:"size:120;not null"`
	Titulo    string         `json:"Titulo" gorm:"size:200"`
	Alunos    []AlunoChamada `json:"Alunos,omitempty" gorm:"foreignKey:ChamadaID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Presença de um aluno dentro de uma chamada. NomeAluno é denormalizado de
// propósito: renomear o aluno não altera chamadas antigas.
type AlunoChamada struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ChamadaID uint   `json:"ChamadaId" gorm:"index;not null"`
	NomeAluno string `json:"NomeAluno" gorm:"size:120;not null"`
	Presenca  string `json:"Presenca" gorm:"size:10;not null;default:ausente"`
}
