package file

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/docbase-io/docbase/internal/chunker"
	"github.com/docbase-io/docbase/internal/core/ports/driven"
)

// Configuration keys in the TOML file.
const (
	KeyOpenAIAPIKey   = "openai.api_key"
	KeyEmbeddingModel = "openai.embedding_model"
	KeyVisionModel    = "openai.vision_model"
	KeyDataDir        = "storage.data_dir"
	KeyUploadsDir     = "storage.uploads_dir"
	KeyChunkMaxChars  = "chunking.max_chars"
	KeyChunkOverlap   = "chunking.overlap"
)

// Settings is the resolved application configuration: file values with
// environment overrides and defaults applied.
type Settings struct {
	OpenAIAPIKey   string
	EmbeddingModel string
	VisionModel    string
	DataDir        string
	UploadsDir     string
	ChunkMaxChars  int
	ChunkOverlap   int
}

// ResolveSettings builds Settings from a config store. A .env file in
// the working directory is loaded first if present, and the
// OPENAI_API_KEY environment variable takes precedence over the file
// value, so CI and containers never need to write config.toml.
func ResolveSettings(store driven.ConfigStore) Settings {
	_ = godotenv.Load()

	s := Settings{
		OpenAIAPIKey:   store.GetString(KeyOpenAIAPIKey),
		EmbeddingModel: store.GetString(KeyEmbeddingModel),
		VisionModel:    store.GetString(KeyVisionModel),
		DataDir:        store.GetString(KeyDataDir),
		UploadsDir:     store.GetString(KeyUploadsDir),
		ChunkMaxChars:  store.GetInt(KeyChunkMaxChars),
		ChunkOverlap:   store.GetInt(KeyChunkOverlap),
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		s.OpenAIAPIKey = key
	}

	if s.ChunkMaxChars <= 0 {
		s.ChunkMaxChars = chunker.DefaultMaxChars
	}
	if s.ChunkOverlap <= 0 {
		s.ChunkOverlap = chunker.DefaultOverlap
	}
	if s.UploadsDir == "" && s.DataDir != "" {
		s.UploadsDir = filepath.Join(s.DataDir, "uploads")
	}

	return s
}
