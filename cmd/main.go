package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/farellandr/gigboard/internal/logging"
	"github.com/farellandr/gigboard/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		logging.Warn().Err(err).Msg("could not read .env file")
	} else if err != nil {
		logging.Info().Msg("no .env file, using the process environment")
	}

	if err := server.Start(); err != nil {
		logging.Error().Err(err).Msg("server failed to start")
		os.Exit(1)
	}
}
