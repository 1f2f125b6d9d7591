package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/splitgen/internal/config"
	"github.com/mvp-joe/splitgen/internal/discovery"
	"github.com/mvp-joe/splitgen/internal/splitter"
)

var (
	modeFlag      string
	recursiveFlag bool
	langFlag      string
	extFlags      []string
	strategyFlag  string
	seedFlag      int64
	outDirFlag    string
	quietFlag     bool
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split <path>",
	Short: "Split a file or directory into prefix/suffix pairs",
	Long: `Split cuts each matched source file into a prefix and a suffix at a
structurally meaningful point.

Modes:
  best        emit the single top validated split per file
  candidates  emit every valid candidate, ranked by descending score

Directories are traversed non-recursively; each matched file becomes one
engine call. Files without a valid split are reported and skipped - an
expected outcome, not an error.

Examples:
  # Best split of one file, JSON on stdout
  splitgen split Service.java

  # All ranked candidates for every .py file in a directory
  splitgen split --mode candidates --ext py ./src

  # Diverse pairs for dataset generation, reproducibly
  splitgen split --strategy uniform-random --seed 42 Service.java

  # Multi-granularity output written as files
  splitgen split --recursive --out-dir ./pairs Service.java
`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVarP(&modeFlag, "mode", "m", "best", "split mode: best or candidates")
	splitCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "re-split large prefix/suffix for finer granularity")
	splitCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "language tag override (default: from file extension)")
	splitCmd.Flags().StringSliceVarP(&extFlags, "ext", "e", nil, "extensions to match in directory mode (default: all known)")
	splitCmd.Flags().StringVar(&strategyFlag, "strategy", "", "selection strategy: highest-score or uniform-random")
	splitCmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed for uniform-random selection")
	splitCmd.Flags().StringVarP(&outDirFlag, "out-dir", "o", "", "write prefix/suffix/metadata files instead of JSON on stdout")
	splitCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
}

func runSplit(cmd *cobra.Command, args []string) error {
	mode := splitter.Mode(modeFlag)
	if mode != splitter.ModeBest && mode != splitter.ModeCandidates {
		return fmt.Errorf("unknown mode %q (want best or candidates)", modeFlag)
	}

	return runEngine(args[0], func(sp *splitter.Splitter, content string) ([]splitter.SplitResult, error) {
		return sp.Split(content, mode, recursiveFlag)
	})
}

// runEngine drives one split function over a file or directory target and
// emits the collected records.
func runEngine(target string, split func(*splitter.Splitter, string) ([]splitter.SplitResult, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cfg)

	cache, err := cfg.NewCache()
	if err != nil {
		return fmt.Errorf("failed to create extraction cache: %w", err)
	}
	if cache != nil {
		defer cache.Close()
	}
	opts := cfg.ToSplitterOptions(cache)

	files, batch, err := collectFiles(target, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no matching files under %s", target)
	}

	progress := newBatchProgress(quietFlag || !batch, len(files))

	// One splitter per language, all sharing the session cache.
	splitters := map[string]*splitter.Splitter{}
	var records []Record

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		lang := resolveLanguage(file)
		sp, ok := splitters[lang]
		if !ok {
			sp = splitter.New(lang, opts)
			splitters[lang] = sp
		}

		results, err := split(sp, string(content))
		if err != nil {
			if splitter.IsNoSplit(err) {
				if verbose {
					fmt.Fprintf(os.Stderr, "no split: %s (%v)\n", file, err)
				}
				progress.fileDone(false)
				continue
			}
			return fmt.Errorf("failed to split %s: %w", file, err)
		}

		for _, r := range results {
			records = append(records, newRecord(file, lang, r))
		}
		progress.fileDone(true)
	}
	progress.finish()

	if outDirFlag != "" {
		return writeOutDir(outDirFlag, records)
	}
	return writeRecords(os.Stdout, records)
}

// loadConfig honors the global --config flag; without it the working
// directory's .splitgen/config.yml (or defaults) applies.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	rootDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.LoadFromDir(rootDir)
}

// applyFlagOverrides lets command flags win over file/env configuration.
func applyFlagOverrides(cfg *config.Config) {
	if strategyFlag != "" {
		cfg.Selection.Strategy = strategyFlag
	}
	if seedFlag != 0 {
		cfg.Selection.Seed = seedFlag
	}
}

// collectFiles resolves the target into engine inputs. The second return
// reports whether this is a directory batch.
func collectFiles(target string, cfg *config.Config) ([]string, bool, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, false, err
	}
	if !info.IsDir() {
		return []string{target}, false, nil
	}

	filter, err := discovery.NewFilter(extFlags, cfg.Paths.Ignore)
	if err != nil {
		return nil, false, fmt.Errorf("invalid ignore pattern: %w", err)
	}
	files, err := filter.ListDir(target)
	if err != nil {
		return nil, false, err
	}
	return files, true, nil
}

// resolveLanguage picks the language tag for a file: the --lang override,
// then the extension mapping, then the bare extension for generic pattern
// scanning.
func resolveLanguage(file string) string {
	if langFlag != "" {
		return langFlag
	}
	ext := filepath.Ext(file)
	if lang := splitter.LanguageForExtension(ext); lang != "" {
		return lang
	}
	if len(ext) > 1 {
		return ext[1:]
	}
	return "text"
}
