package models

import (
	"time"

	"gorm.io/gorm"
)

// Configuração operacional da loja: horários, contato, pagamento e entrega.
// Horários são HH:MM no timezone da loja (abertura <= fechamento assumido,
// não validado).
type Configuracoes struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	HorarioFuncionamentoInicio string `gorm:"size:5;default:'08:00'" json:"horario_funcionamento_inicio"`
	HorarioFuncionamentoFim    string `gorm:"size:5;default:'18:00'" json:"horario_funcionamento_fim"`

	// Telefone principal persistido; a lista completa vive só em memória
	// (compatibilidade com a coluna única original).
	Telefone  string   `gorm:"size:20" json:"telefone"`
	Telefones []string `gorm:"-" json:"telefones,omitempty"`

	MeiosPagamento []string `gorm:"serializer:json;type:text" json:"meios_pagamento"`

	Entrega     bool    `gorm:"default:true" json:"entrega"`
	TaxaEntrega float64 `gorm:"default:0" json:"taxa_entrega"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Configuracoes) TableName() string { return "configuracoes" }

func (c *Configuracoes) AfterFind(tx *gorm.DB) error {
	if len(c.Telefones) == 0 && c.Telefone != "" {
		c.Telefones = []string{c.Telefone}
	}
	return nil
}

func (c *Configuracoes) BeforeSave(tx *gorm.DB) error {
	if c.Telefone == "" && len(c.Telefones) > 0 {
		c.Telefone = c.Telefones[0]
	}
	return nil
}
