// Command vocabctl runs maintenance tasks against the quiz database.
//
// Usage:
//
//	vocabctl migrate up
//	vocabctl load-words --file wordlist.txt
//	vocabctl clear-words --no-input
//	vocabctl promote --username=admin
//
// Database settings are read from the same config as the server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/vocab-quiz/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewCLI().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
