package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syntree/patmatch/grammar"
)

var (
	grammarPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "patmatch",
	Short: "patmatch - compile and run structural patterns over syntax trees",
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	logger = zap.Must(zap.NewProduction())

	rootCmd.PersistentFlags().StringVarP(&grammarPath, "grammar", "g", "", "Target grammar definition (YAML)")
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(matchCmd)
}

// loadGrammar reads the grammar named by --grammar, or falls back to an
// empty grammar so token-only patterns still compile.
func loadGrammar() (*grammar.Grammar, error) {
	if grammarPath == "" {
		return grammar.New("default"), nil
	}
	return grammar.Load(grammarPath)
}
