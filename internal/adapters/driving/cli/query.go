package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docbase-io/docbase/internal/core/ports/driving"
)

var (
	queryTopK int
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Retrieve the most relevant passages for a question",
	Long: `Embeds the question and ranks every indexed chunk by cosine
similarity, printing the top matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", driving.DefaultTopK, "number of passages to return")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if retrieveService == nil {
		return errors.New("retrieve service not configured")
	}

	results, err := retrieveService.Retrieve(context.Background(), args[0], queryTopK)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if queryJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i := range results {
		cmd.Printf("%s %s\n",
			styleAccent.Render(fmt.Sprintf("[%d]", i+1)),
			styleScore.Render(fmt.Sprintf("%.4f", results[i].Score)))
		cmd.Printf("    %s\n\n", results[i].Text)
	}

	return nil
}
