package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/gofish"
	"github.com/minaorangina/gofish/server"
	"github.com/minaorangina/gofish/store"
)

func main() {
	godotenv.Load()

	log := logrus.New()

	cfg, err := server.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("bad configuration")
	}

	saves, err := store.Open(cfg.DBPath)
	if err != nil {
		// persistence is best-effort; play on without saves
		log.WithError(err).Warn("could not open the snapshot store; games will not survive restarts")
	} else {
		defer saves.Close()
	}

	srv := server.NewServer(server.GameServerOpts{
		Store:    gofish.NewInMemoryGameStore(),
		Saves:    saves,
		BotDelay: cfg.BotDelay(),
		Logger:   log,
	})

	log.WithField("addr", cfg.Addr()).Info("listening")
	log.Fatal(http.ListenAndServe(cfg.Addr(), srv))
}
