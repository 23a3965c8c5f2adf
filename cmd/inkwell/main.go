package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/internal/cli"
	"github.com/khushisingh18/Ai-blog-website/internal/config"
	"github.com/khushisingh18/Ai-blog-website/internal/screens"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Error().Err(err).Msg("load .env")
		os.Exit(1)
	}
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		var fe *screens.FailureError
		if errors.As(err, &fe) && fe.Retryable {
			fmt.Fprintln(os.Stderr, screens.RetryHint)
		}
		os.Exit(1)
	}
}
