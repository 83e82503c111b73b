package models

import "time"

// Identidade visual do cardápio. Uma linha por tenant; o slug é a chave
// pública usada em /cardapio/:slug.
type DesignSettings struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	NomeConfeitaria string `gorm:"size:100;not null" json:"nome_confeitaria"`

	LogoURL    string `gorm:"size:500" json:"logo_url,omitempty"`
	Banner1URL string `gorm:"size:500" json:"banner1_url,omitempty"`
	Banner2URL string `gorm:"size:500" json:"banner2_url,omitempty"`

	CorBorda            string `gorm:"size:20;default:'#ec4899'" json:"cor_borda"`
	CorBackground       string `gorm:"size:20;default:'#fef2f2'" json:"cor_background"`
	CorNome             string `gorm:"size:20;default:'#be185d'" json:"cor_nome"`
	BackgroundTopoColor string `gorm:"size:20;default:'#fce7f3'" json:"background_topo_color"`

	TextoRodape string `gorm:"size:255" json:"texto_rodape"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DesignSettings) TableName() string { return "design_settings" }
