package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MenuDoce/cardapio-api/internal/domain/tenant"
	"github.com/MenuDoce/cardapio-api/internal/httperr"
	"github.com/MenuDoce/cardapio-api/internal/models"
)

type TenantGormRepository struct {
	db *gorm.DB
}

func NewTenantGormRepository(db *gorm.DB) *TenantGormRepository {
	return &TenantGormRepository{db: db}
}

// --------------------------------------------------
// Design Settings
// --------------------------------------------------

func (r *TenantGormRepository) GetDesignSettings(
	ctx context.Context,
	ownerID uint,
) (*models.DesignSettings, error) {

	var ds models.DesignSettings
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&ds).Error; err != nil {
		return nil, mapGormErr(err, "design_settings_not_found")
	}
	return &ds, nil
}

func (r *TenantGormRepository) GetDesignSettingsBySlug(
	ctx context.Context,
	slug string,
) (*models.DesignSettings, error) {

	var ds models.DesignSettings
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&ds).Error; err != nil {
		return nil, mapGormErr(err, "loja_not_found")
	}
	return &ds, nil
}

func (r *TenantGormRepository) UpsertDesignSettings(
	ctx context.Context,
	ownerID uint,
	patch tenant.DesignSettingsPatch,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ds models.DesignSettings
		err := tx.Where("user_id = ?", ownerID).First(&ds).Error

		creating := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !creating {
			return httperr.UnavailableErr("failed_to_get_design_settings")
		}
		if creating {
			ds = models.DesignSettings{UserID: ownerID}
		}

		applyDesignPatch(&ds, patch)

		if ds.Slug == "" {
			ds.Slug = tenant.DeriveSlug(ds.NomeConfeitaria)
		}
		if ds.Slug == "" {
			ds.Slug = fmt.Sprintf("confeitaria-%d", ownerID)
		}
		if !tenant.IsValidSlug(ds.Slug) {
			return httperr.ConflictErr("invalid_slug")
		}

		taken, err := r.slugTaken(tx, ds.Slug, ownerID)
		if err != nil {
			return err
		}
		if taken {
			// slug escolhido pelo dono conflita de verdade; slug derivado
			// do nome ganha um sufixo livre
			if patch.Slug != nil {
				return httperr.ConflictErr("slug_already_exists")
			}
			base := ds.Slug
			ds.Slug = ""
			for i := 2; i <= 50; i++ {
				candidate := fmt.Sprintf("%s-%d", base, i)
				if taken, err = r.slugTaken(tx, candidate, ownerID); err != nil {
					return err
				}
				if !taken {
					ds.Slug = candidate
					break
				}
			}
			if ds.Slug == "" {
				return httperr.ConflictErr("slug_already_exists")
			}
		}

		if err := tx.Save(&ds).Error; err != nil {
			return httperr.UnavailableErr("failed_to_save_design_settings")
		}
		return nil
	})
}

func (r *TenantGormRepository) slugTaken(tx *gorm.DB, slug string, ownerID uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.DesignSettings{}).
		Where("slug = ? AND user_id <> ?", slug, ownerID).
		Count(&count).Error; err != nil {
		return false, httperr.UnavailableErr("failed_to_check_slug")
	}
	return count > 0, nil
}

func applyDesignPatch(ds *models.DesignSettings, p tenant.DesignSettingsPatch) {
	if p.Slug != nil {
		ds.Slug = tenant.DeriveSlug(*p.Slug)
	}
	if p.NomeConfeitaria != nil {
		ds.NomeConfeitaria = *p.NomeConfeitaria
	}
	if p.LogoURL != nil {
		ds.LogoURL = *p.LogoURL
	}
	if p.Banner1URL != nil {
		ds.Banner1URL = *p.Banner1URL
	}
	if p.Banner2URL != nil {
		ds.Banner2URL = *p.Banner2URL
	}
	if p.CorBorda != nil {
		ds.CorBorda = *p.CorBorda
	}
	if p.CorBackground != nil {
		ds.CorBackground = *p.CorBackground
	}
	if p.CorNome != nil {
		ds.CorNome = *p.CorNome
	}
	if p.BackgroundTopoColor != nil {
		ds.BackgroundTopoColor = *p.BackgroundTopoColor
	}
	if p.TextoRodape != nil {
		ds.TextoRodape = *p.TextoRodape
	}
}

// --------------------------------------------------
// Configurações
// --------------------------------------------------

func (r *TenantGormRepository) GetConfiguracoes(
	ctx context.Context,
	ownerID uint,
) (*models.Configuracoes, error) {

	var cfg models.Configuracoes
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&cfg).Error; err != nil {
		return nil, mapGormErr(err, "configuracoes_not_found")
	}
	return &cfg, nil
}

func (r *TenantGormRepository) UpsertConfiguracoes(
	ctx context.Context,
	ownerID uint,
	patch tenant.ConfiguracoesPatch,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cfg models.Configuracoes
		err := tx.Where("user_id = ?", ownerID).First(&cfg).Error

		creating := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !creating {
			return httperr.UnavailableErr("failed_to_get_configuracoes")
		}
		if creating {
			cfg = models.Configuracoes{UserID: ownerID}
		}

		if err := applyConfiguracoesPatch(&cfg, patch); err != nil {
			return err
		}

		if err := tx.Save(&cfg).Error; err != nil {
			return httperr.UnavailableErr("failed_to_save_configuracoes")
		}
		return nil
	})
}

func applyConfiguracoesPatch(cfg *models.Configuracoes, p tenant.ConfiguracoesPatch) error {
	if p.HorarioFuncionamentoInicio != nil {
		cfg.HorarioFuncionamentoInicio = *p.HorarioFuncionamentoInicio
	}
	if p.HorarioFuncionamentoFim != nil {
		cfg.HorarioFuncionamentoFim = *p.HorarioFuncionamentoFim
	}
	if p.Telefone != nil {
		cfg.Telefone = *p.Telefone
	}
	// JSON `[]` chega como slice vazio não-nil: lista presente e vazia é
	// pedido explícito de limpar os contatos, inclusive o principal.
	if p.Telefones != nil {
		cfg.Telefones = p.Telefones
		if len(p.Telefones) > 0 {
			cfg.Telefone = p.Telefones[0]
		} else {
			cfg.Telefone = ""
		}
	}
	if p.MeiosPagamento != nil {
		cfg.MeiosPagamento = p.MeiosPagamento
	}
	if p.Entrega != nil {
		cfg.Entrega = *p.Entrega
	}
	if p.TaxaEntrega != nil {
		if *p.TaxaEntrega < 0 {
			return httperr.ConflictErr("invalid_taxa_entrega")
		}
		cfg.TaxaEntrega = *p.TaxaEntrega
	}
	return nil
}

// --------------------------------------------------
// Produtos
// --------------------------------------------------

func (r *TenantGormRepository) ListProdutos(
	ctx context.Context,
	ownerID uint,
	opts tenant.ListProdutosOptions,
) ([]models.Produto, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if opts.OnlyAvailable {
		q = q.Where("disponivel = ?", true)
	}

	var produtos []models.Produto
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&produtos).Error; err != nil {
		return nil, httperr.UnavailableErr("failed_to_list_produtos")
	}
	return produtos, nil
}

func (r *TenantGormRepository) CreateProduto(
	ctx context.Context,
	ownerID uint,
	in tenant.ProdutoInput,
) (*models.Produto, error) {

	if in.PrecoNormal < 0 {
		return nil, httperr.ConflictErr("invalid_preco_normal")
	}

	produto := models.Produto{
		UserID:           ownerID,
		Nome:             in.Nome,
		Descricao:        in.Descricao,
		PrecoNormal:      in.PrecoNormal,
		PrecoPromocional: in.PrecoPromocional,
		ImagemURL:        in.ImagemURL,
		Categoria:        in.Categoria,
		FormaVenda:       in.FormaVenda,
		Disponivel:       in.Disponivel,
		Promocao:         in.Promocao,
	}

	if err := r.db.WithContext(ctx).Create(&produto).Error; err != nil {
		return nil, httperr.UnavailableErr("failed_to_create_produto")
	}
	return &produto, nil
}

func (r *TenantGormRepository) UpdateProduto(
	ctx context.Context,
	ownerID uint,
	produtoID uint,
	patch tenant.ProdutoPatch,
) error {

	var produto models.Produto
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", produtoID, ownerID).
		First(&produto).Error; err != nil {
		return mapGormErr(err, "produto_not_found")
	}

	if err := applyProdutoPatch(&produto, patch); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(&produto).Error; err != nil {
		return httperr.UnavailableErr("failed_to_update_produto")
	}
	return nil
}

func applyProdutoPatch(produto *models.Produto, p tenant.ProdutoPatch) error {
	if p.Nome != nil {
		produto.Nome = *p.Nome
	}
	if p.Descricao != nil {
		produto.Descricao = *p.Descricao
	}
	if p.PrecoNormal != nil {
		if *p.PrecoNormal < 0 {
			return httperr.ConflictErr("invalid_preco_normal")
		}
		produto.PrecoNormal = *p.PrecoNormal
	}
	if p.PrecoPromocional != nil {
		produto.PrecoPromocional = p.PrecoPromocional
	}
	if p.ImagemURL != nil {
		produto.ImagemURL = *p.ImagemURL
	}
	if p.Categoria != nil {
		produto.Categoria = *p.Categoria
	}
	if p.FormaVenda != nil {
		produto.FormaVenda = *p.FormaVenda
	}
	if p.Disponivel != nil {
		produto.Disponivel = *p.Disponivel
	}
	if p.Promocao != nil {
		produto.Promocao = *p.Promocao
	}
	return nil
}

func (r *TenantGormRepository) DeleteProduto(
	ctx context.Context,
	ownerID uint,
	produtoID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", produtoID, ownerID).
		Delete(&models.Produto{})

	if res.Error != nil {
		return httperr.UnavailableErr("failed_to_delete_produto")
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundErr("produto_not_found")
	}
	return nil
}

func mapGormErr(err error, notFoundCode string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundErr(notFoundCode)
	}
	return httperr.UnavailableErr("database_error")
}

// Compile-time check
var _ tenant.Gateway = (*TenantGormRepository)(nil)
