// Command lumen-gateway serves the AI generation endpoint, sign-in and the
// saved-phrase library over HTTP.
//
// Configuration is read from CONFIG_PATH (YAML) and the environment; see
// internal/config. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumenapp/lumen/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lumen-gateway: %v\n", err)
		os.Exit(1)
	}
}
