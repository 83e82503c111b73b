package models

import "time"

type Produto struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	Descricao string `gorm:"size:255" json:"descricao"`

	PrecoNormal float64 `json:"preco_normal"`
	// Sem validação contra o preço normal (campo permissivo).
	PrecoPromocional *float64 `json:"preco_promocional,omitempty"`

	ImagemURL  string `gorm:"size:500" json:"imagem_url,omitempty"`
	Categoria  string `gorm:"size:50" json:"categoria"`
	FormaVenda string `gorm:"size:50" json:"forma_venda"`

	Disponivel bool `gorm:"default:true" json:"disponivel"`
	Promocao   bool `gorm:"default:false" json:"promocao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
