package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Ingest documents into the knowledge base",
	Long: `Extracts text from each file, indexes it for retrieval and runs
price recognition. Supported formats: .pdf, .docx, .xlsx, .jpg, .jpeg, .png.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output summaries as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := context.Background()

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		summary, err := ingestService.Ingest(ctx, path, content)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}

		if ingestJSON {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal summary: %w", err)
			}
			cmd.Println(string(data))
			continue
		}

		cmd.Printf("Ingested %s\n", path)
		cmd.Printf("  Document: %s\n", summary.DocumentID)
		cmd.Printf("  Chunks:   %d\n", summary.ChunkCount)
		if summary.CatalogItemCount > 0 {
			cmd.Printf("  Catalog:  %d items\n", summary.CatalogItemCount)
		}
	}

	return nil
}
