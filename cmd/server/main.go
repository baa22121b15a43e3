package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/config"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/database"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/handlers"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/mailer"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/server"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/service"
	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	db := database.Connect(cfg.DBDSN)

	if !cfg.SMTP.Configured() {
		log.Warn().Msg("smtp not configured, decision emails will be skipped")
	}

	// One mail transport for the process lifetime, injected where needed.
	m := mailer.New(cfg.SMTP)

	users := store.NewUserStore(db)
	leaves := store.NewLeaveStore(db)
	authSvc := service.NewAuthService(users)
	leaveSvc := service.NewLeaveService(leaves, m)

	h := handlers.New(cfg, authSvc, leaveSvc)
	r := server.NewRouter(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
