package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Gobd/xmlmock"
)

var (
	// Flags
	output  string
	node    string
	count   int
	replace bool
	seed    uint64
	indent  int
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "xmlmock <input>",
	Short: "Generate shape-preserving mock data for an XML document",
	Long: `xmlmock rewrites an XML document into a test fixture with the same shape.

Leaf text values are replaced with random values of the same inferred type
(int, float, date or word), and --node/--count normalize how many children
with a given tag each parent carries, cloning an existing sibling or trimming
the excess.

Example:
  xmlmock orders.xml --output fixture.xml --node item --count 5`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := xmlmock.Options{
			Input:   args[0],
			Output:  output,
			Node:    node,
			Count:   count,
			Replace: replace,
			Seed:    seed,
			Indent:  indent,
		}

		logger.Debug("mocking document",
			zap.String("input", opts.Input),
			zap.String("node", opts.Node),
			zap.Int("count", opts.Count),
			zap.Uint64("seed", opts.Seed))

		if err := xmlmock.MockFile(opts); err != nil {
			return err
		}

		logger.Info("document mocked",
			zap.String("input", opts.Input),
			zap.String("output", opts.Destination()))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&output, "output", "", "path to save the output XML file (optional if --replace is used)")
	rootCmd.Flags().StringVar(&node, "node", "", "name of the XML node to adjust")
	rootCmd.Flags().IntVar(&count, "count", 1, "desired number of the specified nodes")
	rootCmd.Flags().BoolVar(&replace, "replace", false, "modify the input file in-place instead of creating an output file")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the mock value stream (0 picks a random seed)")
	rootCmd.Flags().IntVar(&indent, "indent", 0, "re-indent the output with this many spaces (0 keeps the source layout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
