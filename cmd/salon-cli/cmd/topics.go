package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/salon/cmd/salon-cli/internal/output"
	// Declares the inquiry events.
	_ "github.com/nfrund/salon/internal/inquiry"
	"github.com/nfrund/salon/internal/pubsub"
)

func newTopicsCmd() *cobra.Command {
	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "Explore the events published on the internal bus",
		Long: `The topics command lists the typed events modules publish and subscribe to.

Examples:
  # List all topics
  salon-cli topics list

  # List topics for a specific module
  salon-cli topics list --module=booking

  # Show one topic with its payload fields
  salon-cli topics get booking.inquiry.submitted`,
	}
	topicsCmd.AddCommand(newTopicsListCmd(), newTopicsGetCmd())
	return topicsCmd
}

func newTopicsListCmd() *cobra.Command {
	var format, module string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var events []pubsub.EventInfo
			for _, info := range pubsub.Registered() {
				if module == "" || info.Module == module {
					events = append(events, info)
				}
			}

			if len(events) == 0 {
				msg := "No topics found"
				if module != "" {
					msg += fmt.Sprintf(" matching: module '%s'", module)
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			}

			switch format {
			case "json":
				return output.TopicsJSON(cmd.OutOrStdout(), events)
			case "table":
				output.TopicsTable(cmd.OutOrStdout(), events)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q, use table or json", format)
			}
		},
	}
	listCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	listCmd.Flags().StringVarP(&module, "module", "m", "", "Filter topics by module name")
	return listCmd
}

func newTopicsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <topic>",
		Short: "Show a topic with its payload fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range pubsub.Registered() {
				if info.Name == args[0] {
					return output.TopicsJSON(cmd.OutOrStdout(), []pubsub.EventInfo{info})
				}
			}
			return fmt.Errorf("topic %q is not registered", args[0])
		},
	}
}
