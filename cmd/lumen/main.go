// Command lumen is a terminal client for the phrase-generation gateway.
//
// Usage:
//
//	lumen phrases --level Intermediate --interest Travel --count 5
//	lumen feed
//	lumen explain "Let's touch base next week."
//	lumen translate "How are you doing today?"
//
// The gateway URL comes from AI_BASE_URL (or --base-url).
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
