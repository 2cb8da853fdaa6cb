package models

// Flags de configuração consumidas pelo core.
const ConfigLimitarChamadasPorDia = "limitar_chamadas_por_dia"

// Par chave/valor de configuração de runtime. Value é string; flags
// booleanas são interpretadas na leitura.
type Config struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Key       string `json:"key" gorm:"size:60;uniqueIndex;not null"`
	Value     string `json:"value" gorm:"size:60"`
	UpdatedAt string `json:"updatedAt" gorm:"size:40"`
}
