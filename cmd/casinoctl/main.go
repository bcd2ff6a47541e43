package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "casinoctl",
		Short:        "Operator tooling for the casino backend",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newPromotionsCmd(),
		newDepositsCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "%s %v\n", danger.Sprint("error:"), err)
		os.Exit(1)
	}
}
