package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/splitgen/internal/splitter"
)

// Test Plan for record emission:
// - newRecord carries every result field and assigns a fresh id
// - writeRecords emits one JSON object per line
// - writeOutDir writes prefix, suffix and metadata files per record and
//   blanks the bodies in the metadata

func sampleResult() splitter.SplitResult {
	return splitter.SplitResult{
		Prefix:      "class A {\n",
		Suffix:      "}\n",
		SplitLine:   1,
		PrefixRatio: 0.83,
		Level:       "file",
		Candidate: splitter.ScoredCandidate{
			SplitCandidate: splitter.SplitCandidate{
				Line:        1,
				Category:    splitter.ClassBoundary,
				Description: "after class_declaration",
			},
			Score: 0.91,
		},
	}
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	rec := newRecord("src/A.java", "java", sampleResult())

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "src/A.java", rec.File)
	assert.Equal(t, "java", rec.Language)
	assert.Equal(t, "file", rec.Level)
	assert.Equal(t, 1, rec.SplitLine)
	assert.Equal(t, "class", rec.Category)
	assert.Equal(t, 0.91, rec.Score)
	assert.Equal(t, "class A {\n", rec.Prefix)
	assert.Equal(t, "}\n", rec.Suffix)

	// Each record gets its own id.
	assert.NotEqual(t, rec.ID, newRecord("src/A.java", "java", sampleResult()).ID)
}

func TestWriteRecords_NDJSON(t *testing.T) {
	t.Parallel()

	records := []Record{
		newRecord("a.java", "java", sampleResult()),
		newRecord("b.java", "java", sampleResult()),
	}

	var buf bytes.Buffer
	require.NoError(t, writeRecords(&buf, records))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)

	for i, line := range lines {
		var got Record
		require.NoError(t, json.Unmarshal(line, &got))
		assert.Equal(t, records[i].ID, got.ID)
		assert.Equal(t, records[i].Prefix, got.Prefix)
	}
}

func TestWriteOutDir(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "out")
	rec := newRecord("src/Sample.java", "java", sampleResult())
	require.NoError(t, writeOutDir(outDir, []Record{rec}))

	prefix, err := os.ReadFile(filepath.Join(outDir, "Sample_split_0.prefix"))
	require.NoError(t, err)
	assert.Equal(t, rec.Prefix, string(prefix))

	suffix, err := os.ReadFile(filepath.Join(outDir, "Sample_split_0.suffix"))
	require.NoError(t, err)
	assert.Equal(t, rec.Suffix, string(suffix))

	metaRaw, err := os.ReadFile(filepath.Join(outDir, "Sample_split_0.json"))
	require.NoError(t, err)

	var meta Record
	require.NoError(t, json.Unmarshal(metaRaw, &meta))
	assert.Equal(t, rec.ID, meta.ID)
	assert.Equal(t, rec.SplitLine, meta.SplitLine)
	// Bodies live in the sibling files, not the metadata.
	assert.Empty(t, meta.Prefix)
	assert.Empty(t, meta.Suffix)
}
