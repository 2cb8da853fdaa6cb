package models

// Grupo de matérias por turma, com ativação opcional.
type MaterialGroup struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Turma    string `json:"turma" gorm:"size:20;index"`
	Disabled bool   `json:"disabled" gorm:"default:false"`
}

type Material struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:120;not null"`
	Description string `json:"description" gorm:"type:text"`
	Turma       string `json:"turma" gorm:"size:20;index"`
	Group       string `json:"group" gorm:"size:120"`
	Disabled    bool   `json:"disabled" gorm:"default:false"`
}
