package models

// Espelho do token assinado. O JWT é auto-verificável; a linha no banco é o
// que permite logout/revogação antes da expiração. CreateAt e ExpiresAt
// guardam o horário civil de São Paulo em ISO-8601.
type Token struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     uint   `json:"userId" gorm:"index;not null"`
	User       string `json:"user" gorm:"size:60;not null"`
	Permission string `json:"permission" gorm:"size:20"`
	Token      string `json:"token" gorm:"type:text;index;not null"`
	Jti        string `json:"jti" gorm:"size:36;index"`
	CreateAt   string `json:"createAt" gorm:"size:40"`
	ExpiresAt  string `json:"expiresAt" gorm:"size:40"`
}

// Log append-only de entrada/saída no sistema; nunca é atualizado nem
// apagado.
type LogUser struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   uint   `json:"userId" gorm:"index;not null"`
	User     string `json:"user" gorm:"size:60"`
	Token    string `json:"token" gorm:"type:text"`
	Datatime string `json:"datatime" gorm:"size:40"`
	Info     string `json:"info" gorm:"size:120"`
}
