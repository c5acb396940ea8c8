package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syntree/patmatch"
	"github.com/syntree/patmatch/tree"
)

var matchPattern string

var matchCmd = &cobra.Command{
	Use:   "match -p pattern [tree files...]",
	Short: "Match a pattern against JSON-encoded syntax trees",
	Run: func(cmd *cobra.Command, args []string) {
		if matchPattern == "" || len(args) == 0 {
			fmt.Println("error: Please provide a pattern and tree file paths")
			os.Exit(1)
		}

		g, err := loadGrammar()
		if err != nil {
			logger.Fatal("Failed to load grammar", zap.Error(err))
		}
		compiled, err := patmatch.New(g).Compile(matchPattern)
		if err != nil {
			logger.Fatal("Failed to compile pattern", zap.String("pattern", matchPattern), zap.Error(err))
		}

		anyMiss := false
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				logger.Fatal("Failed to open tree file", zap.Error(err))
			}
			node, err := tree.DecodeJSON(f, g)
			_ = f.Close()
			if err != nil {
				logger.Fatal("Failed to decode tree", zap.String("path", path), zap.Error(err))
			}

			caps := tree.Captures{}
			if !compiled.Match(node, caps) {
				fmt.Printf("%s: no match\n", path)
				anyMiss = true
				continue
			}
			fmt.Printf("%s: %s\n", path, patternStyle.Sprint("match"))
			printCaptures(caps)
		}
		if anyMiss {
			os.Exit(1)
		}
	},
}

func init() {
	matchCmd.Flags().StringVarP(&matchPattern, "pattern", "p", "", "Pattern to match")
	_ = matchCmd.MarkFlagRequired("pattern")
}

func printCaptures(caps tree.Captures) {
	names := make([]string, 0, len(caps))
	for name := range caps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, node := range caps[name] {
			fmt.Printf("  %s = %s\n", name, node)
		}
	}
}
