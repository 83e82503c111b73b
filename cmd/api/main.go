package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MenuDoce/cardapio-api/internal/config"
	dbpkg "github.com/MenuDoce/cardapio-api/internal/db"
	"github.com/MenuDoce/cardapio-api/internal/routes"
	"github.com/MenuDoce/cardapio-api/web"
)

func main() {

	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
