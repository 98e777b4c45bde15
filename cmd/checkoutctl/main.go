package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "checkoutctl",
		Short:         "Operator tools for the gift list checkout",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(installmentsCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(pixPayloadCmd())
	rootCmd.AddCommand(probeCmd())

	return rootCmd
}
