// Package output renders CLI results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/salon/internal/pubsub"
)

// Package is one tier row of "content packages".
type Package struct {
	Tier        string `json:"tier"`
	Name        string `json:"name"`
	Price       string `json:"price,omitempty"`
	CheckoutURL string `json:"checkout_url,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
}

// Topic represents a topic for display purposes
type Topic struct {
	Name          string   `json:"name"`
	Module        string   `json:"module"`
	Description   string   `json:"description"`
	Payload       string   `json:"payload"`
	PayloadFields []string `json:"payload_fields,omitempty"`
}

// PackagesTable writes packages as an aligned table.
func PackagesTable(w io.Writer, rows []Package) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "TIER\tNAME\tPRICE\tCHECKOUT")
	fmt.Fprintln(tw, "----\t----\t-----\t--------")
	for _, p := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Tier, p.Name, orDash(p.Price), orDash(p.CheckoutURL))
	}
}

// PackagesJSON writes packages as indented JSON.
func PackagesJSON(w io.Writer, rows []Package) error {
	return encode(w, struct {
		Packages []Package `json:"packages"`
		Count    int       `json:"count"`
	}{Packages: rows, Count: len(rows)})
}

// TopicsTable displays topics in a formatted table
func TopicsTable(w io.Writer, events []pubsub.EventInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "NAME\tMODULE\tPAYLOAD\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t-------\t-----------")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, orDash(e.Module), orDash(e.TypeName), truncateString(e.Description, 50))
	}
}

// TopicsJSON displays topics in JSON format
func TopicsJSON(w io.Writer, events []pubsub.EventInfo) error {
	topics := make([]Topic, len(events))
	for i, e := range events {
		topics[i] = Topic{
			Name:          e.Name,
			Module:        e.Module,
			Description:   e.Description,
			Payload:       e.TypeName,
			PayloadFields: e.PayloadFields,
		}
	}
	return encode(w, struct {
		Topics []Topic `json:"topics"`
		Count  int     `json:"count"`
	}{Topics: topics, Count: len(topics)})
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
