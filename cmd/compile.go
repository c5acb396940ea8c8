package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syntree/patmatch"
)

var withTree bool

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	patternStyle = color.New(color.FgCyan, color.Bold)
	treeStyle    = color.New(color.FgYellow)
)

var compileCmd = &cobra.Command{
	Use:   "compile [patterns...]",
	Short: "Compile patterns and print their matcher trees",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide at least one pattern")
			os.Exit(1)
		}

		g, err := loadGrammar()
		if err != nil {
			logger.Fatal("Failed to load grammar", zap.Error(err))
		}
		compiler := patmatch.New(g)

		failed := false
		for _, pattern := range args {
			compiled, root, err := compiler.CompileWithTree(pattern)
			if err != nil {
				fmt.Printf("%s %s: %v\n", errorStyle.Sprint("error:"), pattern, err)
				failed = true
				continue
			}
			fmt.Printf("%s\n  %s\n", patternStyle.Sprint(pattern), compiled)
			if withTree {
				fmt.Printf("  %s\n", treeStyle.Sprint(root))
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	compileCmd.Flags().BoolVar(&withTree, "tree", false, "Also print the pattern's own syntax tree")
}
