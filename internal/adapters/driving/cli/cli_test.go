package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")
	assert.NoError(t, err)
	assert.Contains(t, out, "docbase version test-version-1.0.0")
}

func TestQueryCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "query")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestQueryCmd_PrintsRankedPassages(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "query", "сколько стоит латте")
	assert.NoError(t, err)
	assert.Contains(t, out, "Латте 1200 тг")
	assert.Contains(t, out, "0.9100")
}

func TestQueryCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer func() { queryJSON = false }()

	out, err := execute(t, "query", "латте", "--json")
	assert.NoError(t, err)
	assert.Contains(t, out, `"text"`)
	assert.Contains(t, out, `"score"`)
}

func TestQueryCmd_TopKLimitsResults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer func() { queryTopK = 4 }()

	out, err := execute(t, "query", "латте", "-k", "1")
	assert.NoError(t, err)
	assert.Contains(t, out, "Латте 1200 тг")
	assert.NotContains(t, out, "Эспрессо")
}

func TestIngestCmd_PrintsSummary(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "menu.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	out, err := execute(t, "ingest", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "Chunks:   3")
	assert.Contains(t, out, "Catalog:  2 items")
}

func TestIngestCmd_MissingFile(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "ingest", filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}

func TestDocumentListCmd_PrintsDocuments(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "document", "list")
	assert.NoError(t, err)
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "menu.pdf")
	assert.Contains(t, out, "Total: 1 documents")
}

func TestDocumentDeleteCmd(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "document", "delete", "doc-1")
	assert.NoError(t, err)
	assert.Contains(t, out, "deleted")
	assert.Equal(t, []string{"doc-1"}, fake.deletedIDs)
}

func TestDocumentDeleteCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "document", "delete", "missing")
	assert.Error(t, err)
}

func TestCatalogCmd_ListsAllItems(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "catalog")
	assert.NoError(t, err)
	assert.Contains(t, out, "Латте")
	assert.Contains(t, out, "Пицца")
	assert.Contains(t, out, "Total: 2 items")
}

func TestCatalogCmd_FilterByDocument(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer func() { catalogDocumentID = "" }()

	out, err := execute(t, "catalog", "--document", "doc-2")
	assert.NoError(t, err)
	assert.Contains(t, out, "Пицца")
	assert.NotContains(t, out, "Латте")
}
