package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	catalogDocumentID string
	catalogJSON       bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List recognised price positions",
	Long: `Shows catalog items recognised during ingestion. Use --document to
restrict to a single document.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogDocumentID, "document", "d", "", "only items from this document")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "output items as JSON")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	items, err := catalogService.Items(context.Background(), catalogDocumentID)
	if err != nil {
		return fmt.Errorf("failed to list catalog items: %w", err)
	}

	if catalogJSON {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal items: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		cmd.Println("No catalog items found.")
		return nil
	}

	for i := range items {
		cmd.Printf("  %s  %s %s\n",
			items[i].Name,
			styleScore.Render(fmt.Sprintf("%.2f", items[i].PriceValue)),
			styleAccent.Render(items[i].Currency))
		cmd.Printf("      %s\n", styleMuted.Render(
			fmt.Sprintf("%s, line %d", items[i].DocumentID, items[i].LineNo)))
	}
	cmd.Printf("\nTotal: %d items\n", len(items))

	return nil
}
