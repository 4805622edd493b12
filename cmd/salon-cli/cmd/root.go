package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "salon-cli",
		Short: "Diaspora Salon CLI tool",
		Long: `salon-cli is a command-line interface for the Diaspora Salon site.

Available commands:
  content    Validate and inspect the site content document
  topics     List the events published on the internal bus
  version    Print the version

Use "salon-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newVersionCmd(), newContentCmd(), newTopicsCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
