// Package cli implements the docbase command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/docbase-io/docbase/internal/adapters/driven/config/file"
	embeddingopenai "github.com/docbase-io/docbase/internal/adapters/driven/embedding/openai"
	"github.com/docbase-io/docbase/internal/adapters/driven/storage/sqlite"
	visionopenai "github.com/docbase-io/docbase/internal/adapters/driven/vision/openai"
	"github.com/docbase-io/docbase/internal/chunker"
	"github.com/docbase-io/docbase/internal/core/ports/driven"
	"github.com/docbase-io/docbase/internal/core/ports/driving"
	"github.com/docbase-io/docbase/internal/core/services"
	"github.com/docbase-io/docbase/internal/extractors/docx"
	"github.com/docbase-io/docbase/internal/extractors/image"
	"github.com/docbase-io/docbase/internal/extractors/pdf"
	"github.com/docbase-io/docbase/internal/extractors/xlsx"
	"github.com/docbase-io/docbase/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by PersistentPreRunE; subcommands nil-check them.
var (
	ingestService   driving.IngestService
	retrieveService driving.RetrieveService
	documentService driving.DocumentService
	catalogService  driving.CatalogService
	configStore     driven.ConfigStore
	store           *sqlite.Store
)

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
	flagDataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "docbase",
	Short: "Document knowledge base with semantic retrieval",
	Long: `docbase ingests PDF, DOCX, XLSX and image documents, indexes their
text for semantic retrieval, and recognises price positions into a
catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		// Version and help need no services or data directory.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Already wired, e.g. by tests injecting fakes.
		if ingestService != nil {
			return nil
		}

		return wireServices()
	},
}

// wireServices builds the full pipeline from configuration. The
// embedding and vision adapters are left nil when no API key is
// configured; services degrade per their contracts.
func wireServices() error {
	var err error
	configStore, err = configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settings := configfile.ResolveSettings(configStore)
	if flagDataDir != "" {
		settings.DataDir = flagDataDir
	}
	logger.Debug("Config file: %s", configStore.Path())

	store, err = sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("Database: %s", store.Path())

	var embedder driven.EmbeddingService
	var vision driven.VisionService
	if settings.OpenAIAPIKey != "" {
		svc, err := embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey: settings.OpenAIAPIKey,
			Model:  settings.EmbeddingModel,
		})
		if err != nil {
			return fmt.Errorf("configuring embeddings: %w", err)
		}
		embedder = svc

		vsvc, err := visionopenai.NewVisionService(visionopenai.Config{
			APIKey: settings.OpenAIAPIKey,
			Model:  settings.VisionModel,
		})
		if err != nil {
			return fmt.Errorf("configuring vision: %w", err)
		}
		vision = vsvc
	} else {
		logger.Warn("OPENAI_API_KEY not configured; ingestion and retrieval are unavailable")
	}

	splitter := chunker.New(
		chunker.WithMaxChars(settings.ChunkMaxChars),
		chunker.WithOverlap(settings.ChunkOverlap),
	)

	extractors := []driven.Extractor{
		pdf.New(),
		docx.New(),
		xlsx.New(),
		image.New(vision),
	}

	ingestion := services.NewIngestionService(
		extractors,
		embedder,
		store.DocumentStore(),
		store.CatalogStore(),
		splitter,
		settings.UploadsDir,
	)
	ingestService = ingestion
	documentService = ingestion
	catalogService = ingestion

	retrieveService = services.NewRetrievalService(embedder, store.DocumentStore())

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.docbase)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "data directory (default ~/.docbase/data)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
