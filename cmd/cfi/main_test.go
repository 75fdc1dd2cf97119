package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfikit/internal/taxonomy"
)

func TestReadCodesFile(t *testing.T) {
	t.Run("skips blanks and comments", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "codes.txt")
		require.NoError(t, os.WriteFile(path, []byte(
			"ESVNFB\n\n# portfolio A\n  DBFUGB  \n#skip\nozzzzz\n"), 0o644))

		codes, err := readCodesFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"ESVNFB", "DBFUGB", "ozzzzz"}, codes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readCodesFile(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}

func TestReferenceMarkdown(t *testing.T) {
	tax, err := taxonomy.Default()
	require.NoError(t, err)

	md := referenceMarkdown(tax)
	assert.Contains(t, md, "# ISO 10962 CFI Taxonomy")
	assert.Contains(t, md, "## E - Equities")
	assert.Contains(t, md, "### ES - Shares")
	assert.Contains(t, md, "- `V` Voting")
	assert.Contains(t, md, "No explicit attribute rules; any letter is accepted at positions 3-6 (X recommended).")
	assert.Contains(t, md, "Position 6:")
}

func TestRenderMarkdownFallsBack(t *testing.T) {
	// Whatever the terminal, rendering must never lose the content.
	content := "# Heading\n\nbody\n"
	out := renderMarkdown(content)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "body")
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ES", normalizeCode("  es "))
	assert.Equal(t, "E", normalizeCode("e"))
}
