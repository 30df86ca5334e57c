package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fonetik/wugboard/config"
	"github.com/fonetik/wugboard/events"
	"github.com/fonetik/wugboard/phondict"
	"github.com/fonetik/wugboard/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// A missing or corrupt dictionary aborts startup. Running without it
	// would reject every word ever played.
	dict, err := phondict.Load(cfg.DictionaryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading pronunciation dictionary")
	}

	pub, err := events.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to NATS")
	}
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal...")
		cancel()
	}()

	srv := server.New(cfg, dict, pub)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("game server closed")
}
