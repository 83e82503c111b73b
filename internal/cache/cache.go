package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/MenuDoce/cardapio-api/internal/config"
)

// Cache cobre os dois usos de Redis do sistema: snapshot do cardápio
// público por slug (TTL curto, invalidado em qualquer mutação do dono) e
// tokens de redefinição de senha.
//
// Redis fora do ar não derruba nada: toda leitura vira miss e toda escrita
// é descartada em silêncio.
type Cache struct {
	rdb *redis.Client
}

const (
	menuTTL   = 60 * time.Second
	menuKey   = "menu:"
	resetKey  = "pwreset:"
	pingLimit = 2 * time.Second
)

func New(cfg *config.Config) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingLimit)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).
			Msg("redis indisponível; cache de cardápio e reset de senha degradados")
	}

	return &Cache{rdb: rdb}
}

// --------------------------------------------------
// Cardápio público
// --------------------------------------------------

func (c *Cache) GetMenu(ctx context.Context, slug string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, menuKey+slug).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) SetMenu(ctx context.Context, slug string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, menuKey+slug, payload, menuTTL).Err()
}

func (c *Cache) InvalidateMenu(ctx context.Context, slug string) {
	if c == nil || c.rdb == nil || slug == "" {
		return
	}
	_ = c.rdb.Del(ctx, menuKey+slug).Err()
}

// --------------------------------------------------
// Tokens de redefinição de senha
// --------------------------------------------------

func (c *Cache) SetResetToken(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return redis.ErrClosed
	}
	return c.rdb.Set(ctx, resetKey+token, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// TakeResetToken resgata e consome o token em uma operação só; um token só
// redefine uma senha.
func (c *Cache) TakeResetToken(ctx context.Context, token string) (uint, bool) {
	if c == nil || c.rdb == nil {
		return 0, false
	}
	v, err := c.rdb.GetDel(ctx, resetKey+token).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
