package main

import (
	"fmt"
	"os"

	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/seba-moreno/real-estate-tracker/internal/config"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := ServeCmd()

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Real estate record keeping API",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand starts the server.
		RunE: serve.RunE,
	}
	rootCmd.Flags().AddFlagSet(serve.Flags())

	rootCmd.AddCommand(
		serve,
		MigrateCmd(),
		SeedCmd(),
	)
	return rootCmd
}
