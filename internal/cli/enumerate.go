package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/splitgen/internal/splitter"
)

// enumerateCmd represents the enumerate command
var enumerateCmd = &cobra.Command{
	Use:   "enumerate <path>",
	Short: "Emit coarse pairs per declaration and member header",
	Long: `Enumerate pre-generates multi-granularity pairs: the file-level best
split plus one pair after every detected declaration header and every
member header, without score-based competition. Useful for building
class-level and method-level completion samples alongside the single
best file-level pair.

Examples:
  splitgen enumerate Service.java
  splitgen enumerate --ext java --out-dir ./pairs ./src
`,
	Args: cobra.ExactArgs(1),
	RunE: runEnumerate,
}

func init() {
	rootCmd.AddCommand(enumerateCmd)
	enumerateCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "language tag override (default: from file extension)")
	enumerateCmd.Flags().StringSliceVarP(&extFlags, "ext", "e", nil, "extensions to match in directory mode (default: all known)")
	enumerateCmd.Flags().StringVarP(&outDirFlag, "out-dir", "o", "", "write prefix/suffix/metadata files instead of JSON on stdout")
	enumerateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	return runEngine(args[0], func(sp *splitter.Splitter, content string) ([]splitter.SplitResult, error) {
		return sp.MultiLevel(content)
	})
}
