package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	code, err := newRootCmd().execute()
	if err != nil {
		log.Debug().Err(err).Msg("crackhash failed")
	}
	os.Exit(code)
}
