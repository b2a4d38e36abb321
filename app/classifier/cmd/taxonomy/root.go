package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "taxonomy",
		Short:        "Map financial news sentiment into a market taxonomy",
		Long:         `taxonomy converts FinBERT sentiment logits into a market direction, an event type, an impact strength and a risk signal.`,
		SilenceUsage: true,
	}
	root.AddCommand(newMapCmd(), newClassifyCmd())
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
