package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/contract-ledger/backend/internal/allocation"
	"github.com/contract-ledger/backend/internal/config"
	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	tag, err := cfg.LanguageTag()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	engine := allocation.NewEngine(
		allocation.NewGormStore(db),
		allocation.WithDefaultCategory(cfg.DefaultCostType),
		allocation.WithLanguage(tag),
	)

	r, teardown, err := router.Config(*cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	url, err := cfg.URL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	base := url.Path
	if base == "" {
		base = "/"
	}

	router.AttachRoutes(v1.Controller{DB: db, Engine: engine}, r.Group(base), cfg.EnablePprof)

	log.Info().Str("url", url.String()).Str("database", cfg.DBPath).Msg("starting contract ledger")
	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
