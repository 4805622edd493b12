package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/salon/cmd/salon-cli/internal/output"
	"github.com/nfrund/salon/internal/content"
)

// contentFs is the file system content documents are read from.
var contentFs = afero.NewOsFs()

func newContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Validate and inspect the site content document",
		Long: `The content command checks a YAML content document before it is deployed
and prints what the landing page will show from it.

Without a path the document embedded in the server is used.

Examples:
  salon-cli content validate ./content.yaml
  salon-cli content packages ./content.yaml --format json`,
	}
	contentCmd.AddCommand(newContentValidateCmd(), newContentPackagesCmd())
	return contentCmd
}

func loadDocument(args []string) (*content.Document, string, error) {
	if len(args) == 0 || args[0] == "" {
		doc, err := content.Default()
		return doc, "embedded document", err
	}
	doc, err := content.Load(contentFs, args[0])
	return doc, args[0], err
}

func newContentValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a content document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, source, err := loadDocument(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d packages, %d speakers, %d FAQ entries, itinerary %s\n",
				source, len(doc.Packages), len(doc.Speakers), len(doc.FAQ), itineraryMode(doc))
			return nil
		},
	}
}

func newContentPackagesCmd() *cobra.Command {
	var format string
	packagesCmd := &cobra.Command{
		Use:   "packages [path]",
		Short: "List the package tiers with their formatted prices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(args)
			if err != nil {
				return err
			}

			rows := make([]output.Package, 0, len(doc.Packages))
			for _, p := range doc.Packages {
				rows = append(rows, output.Package{
					Tier:        string(p.Tier),
					Name:        p.Name,
					Price:       content.FormatPrice(doc.Site.Language, p.Currency, p.Price),
					CheckoutURL: p.CheckoutURL,
					Featured:    p.Featured,
				})
			}

			switch format {
			case "json":
				return output.PackagesJSON(cmd.OutOrStdout(), rows)
			case "table":
				output.PackagesTable(cmd.OutOrStdout(), rows)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q, use table or json", format)
			}
		},
	}
	packagesCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return packagesCmd
}

func itineraryMode(doc *content.Document) string {
	if doc.ItineraryExternal() {
		return "external"
	}
	return "timeline"
}
