package main

import (
	"log"
	"os"

	zlog "github.com/rs/zerolog/log"
)

type server struct{}

func (server) main() {
	os.Exit(1) // want `os.Exit is forbidden outside main function`
}

func run() error {
	log.Fatal("forbidden in helpers") // want `log.Fatal is forbidden outside main function`
	return nil
}

func init() {
	panic("forbidden in init") // want `panic is forbidden outside main function`
}

func main() {
	if err := run(); err != nil {
		zlog.Fatal().Err(err).Msg("allowed in main")
	}

	defer func() {
		os.Exit(0)
	}()

	log.Fatal("allowed in main")
}
