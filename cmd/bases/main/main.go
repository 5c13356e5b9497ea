package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/darthunder/bases/cmd/bases"
	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := bases.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		con := style.NewConsole(os.Stderr, style.ColorEnabled(os.Stderr, false))
		con.Error("%s", errors.Message(err))
		stop()
		os.Exit(1)
	}
}
