package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mvp-joe/splitgen/internal/splitter"
)

// Record is the JSON shape of one emitted split. Downstream sample
// builders consume these; the engine itself owns no on-disk format.
type Record struct {
	ID          string  `json:"id"`
	File        string  `json:"file"`
	Language    string  `json:"language"`
	Level       string  `json:"level,omitempty"`
	SplitLine   int     `json:"split_line"`
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
	PrefixRatio float64 `json:"prefix_ratio"`
	Prefix      string  `json:"prefix"`
	Suffix      string  `json:"suffix"`
}

// newRecord converts one SplitResult into its emitted form.
func newRecord(file, lang string, r splitter.SplitResult) Record {
	return Record{
		ID:          uuid.New().String(),
		File:        file,
		Language:    lang,
		Level:       r.Level,
		SplitLine:   r.SplitLine,
		Category:    r.Candidate.Category.String(),
		Score:       r.Candidate.Score,
		Description: r.Candidate.Description,
		PrefixRatio: r.PrefixRatio,
		Prefix:      r.Prefix,
		Suffix:      r.Suffix,
	}
}

// writeRecords emits one JSON object per line.
func writeRecords(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeOutDir materializes each record as a prefix file, a suffix file and
// a metadata JSON next to them.
func writeOutDir(outDir string, records []Record) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, rec := range records {
		base := strings.TrimSuffix(filepath.Base(rec.File), filepath.Ext(rec.File))
		stem := filepath.Join(outDir, fmt.Sprintf("%s_split_%d", base, i))

		if err := os.WriteFile(stem+".prefix", []byte(rec.Prefix), 0644); err != nil {
			return err
		}
		if err := os.WriteFile(stem+".suffix", []byte(rec.Suffix), 0644); err != nil {
			return err
		}

		meta := rec
		meta.Prefix = ""
		meta.Suffix = ""
		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(stem+".json", data, 0644); err != nil {
			return err
		}
	}
	return nil
}
