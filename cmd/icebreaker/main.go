package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sant0-9/icebreaker/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(cli.Execute(ctx))
}
