package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ewt/internal/api"
	"ewt/internal/config"
)

// @title        Local Ethereum Wallet API
// @version      1.0
// @description  Local HD wallet manager: generation, keystore encryption, message and transaction signing.
func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up router")
	}

	addr := ":" + config.GetPort()
	log.Info().
		Str("addr", addr).
		Str("rpc", config.GetEthereumRPCURL()).
		Msg("walletd listening")

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
