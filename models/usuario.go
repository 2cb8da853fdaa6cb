package models

import "time"

type Usuario struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Nome       string `json:"nome" gorm:"size:120;not null"`
	User       string `json:"user" gorm:"size:60;uniqueIndex;not null"`
	PhotoPath  string `json:"photoPath" gorm:"size:255"`
	Password   string `json:"-" gorm:"not null"` // hash bcrypt, nunca sai no JSON
	Permission string `json:"permission" gorm:"size:20;not null"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
