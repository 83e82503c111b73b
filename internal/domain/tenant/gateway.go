package tenant

import (
	"context"

	"github.com/MenuDoce/cardapio-api/internal/models"
)

// Gateway é a única fronteira de leitura/escrita das entidades do tenant.
// Toda operação é explicitamente escopada pelo ownerID; nenhum estado
// ambiente de "usuário atual" aqui dentro.
//
// Linha ausente vira erro de negócio com kind not_found; quem chama decide
// se isso é terminal (rota pública) ou apenas "ainda não configurado"
// (carga do admin).
type Gateway interface {
	GetDesignSettings(ctx context.Context, ownerID uint) (*models.DesignSettings, error)
	GetDesignSettingsBySlug(ctx context.Context, slug string) (*models.DesignSettings, error)
	UpsertDesignSettings(ctx context.Context, ownerID uint, patch DesignSettingsPatch) error

	GetConfiguracoes(ctx context.Context, ownerID uint) (*models.Configuracoes, error)
	UpsertConfiguracoes(ctx context.Context, ownerID uint, patch ConfiguracoesPatch) error

	ListProdutos(ctx context.Context, ownerID uint, opts ListProdutosOptions) ([]models.Produto, error)
	CreateProduto(ctx context.Context, ownerID uint, in ProdutoInput) (*models.Produto, error)
	UpdateProduto(ctx context.Context, ownerID uint, produtoID uint, patch ProdutoPatch) error
	DeleteProduto(ctx context.Context, ownerID uint, produtoID uint) error
}

// ImageStore guarda as imagens (logo, banners, foto de produto) em buckets
// nomeados e devolve a URL pública resultante.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType, bucket, path string) (string, error)
	Delete(ctx context.Context, bucket, path string) error
}

type ListProdutosOptions struct {
	OnlyAvailable bool
}

// Patches com campos-ponteiro: nil não toca o valor existente (merge
// parcial, chave a chave).

type DesignSettingsPatch struct {
	Slug                *string `json:"slug,omitempty"`
	NomeConfeitaria     *string `json:"nome_confeitaria,omitempty"`
	LogoURL             *string `json:"logo_url,omitempty"`
	Banner1URL          *string `json:"banner1_url,omitempty"`
	Banner2URL          *string `json:"banner2_url,omitempty"`
	CorBorda            *string `json:"cor_borda,omitempty"`
	CorBackground       *string `json:"cor_background,omitempty"`
	CorNome             *string `json:"cor_nome,omitempty"`
	BackgroundTopoColor *string `json:"background_topo_color,omitempty"`
	TextoRodape         *string `json:"texto_rodape,omitempty"`
}

type ConfiguracoesPatch struct {
	HorarioFuncionamentoInicio *string  `json:"horario_funcionamento_inicio,omitempty"`
	HorarioFuncionamentoFim    *string  `json:"horario_funcionamento_fim,omitempty"`
	Telefone                   *string  `json:"telefone,omitempty"`
	Telefones                  []string `json:"telefones,omitempty"`
	MeiosPagamento             []string `json:"meios_pagamento,omitempty"`
	Entrega                    *bool    `json:"entrega,omitempty"`
	TaxaEntrega                *float64 `json:"taxa_entrega,omitempty"`
}

type ProdutoInput struct {
	Nome             string   `json:"nome"`
	Descricao        string   `json:"descricao"`
	PrecoNormal      float64  `json:"preco_normal"`
	PrecoPromocional *float64 `json:"preco_promocional,omitempty"`
	ImagemURL        string   `json:"imagem_url,omitempty"`
	Categoria        string   `json:"categoria"`
	FormaVenda       string   `json:"forma_venda"`
	Disponivel       bool     `json:"disponivel"`
	Promocao         bool     `json:"promocao"`
}

type ProdutoPatch struct {
	Nome             *string  `json:"nome,omitempty"`
	Descricao        *string  `json:"descricao,omitempty"`
	PrecoNormal      *float64 `json:"preco_normal,omitempty"`
	PrecoPromocional *float64 `json:"preco_promocional,omitempty"`
	ImagemURL        *string  `json:"imagem_url,omitempty"`
	Categoria        *string  `json:"categoria,omitempty"`
	FormaVenda       *string  `json:"forma_venda,omitempty"`
	Disponivel       *bool    `json:"disponivel,omitempty"`
	Promocao         *bool    `json:"promocao,omitempty"`
}
