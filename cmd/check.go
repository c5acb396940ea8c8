package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syntree/patmatch"
	"github.com/syntree/patmatch/grammar"
)

var watchRules bool

var checkCmd = &cobra.Command{
	Use:   "check [rule files...]",
	Short: "Compile every pattern in the given rule files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide rule file paths")
			os.Exit(1)
		}

		g, err := loadGrammar()
		if err != nil {
			logger.Fatal("Failed to load grammar", zap.Error(err))
		}

		bad := checkRuleFiles(g, args)
		if watchRules {
			watchRuleFiles(g, args)
			return
		}
		if bad > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&watchRules, "watch", "w", false, "Re-check rule files when they change")
}

func checkRuleFiles(g *grammar.Grammar, paths []string) int {
	compiler := patmatch.New(g, patmatch.WithLogger(logger))

	bad := 0
	for _, path := range paths {
		rules, err := patmatch.LoadRules(path)
		if err != nil {
			logger.Error("Error loading rules", zap.String("path", path), zap.Error(err))
			bad++
			continue
		}

		bar := progressbar.NewOptions(len(rules),
			progressbar.OptionSetDescription(path),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		for _, rule := range rules {
			if _, err := compiler.Compile(rule.Pattern); err != nil {
				fmt.Printf("\n%s %s: %v\n", errorStyle.Sprint("error:"), rule.Name, err)
				bad++
			}
			_ = bar.Add(1)
		}
		_ = bar.Finish()
		fmt.Printf("%s: %d rules\n", path, len(rules))
	}
	return bad
}

func watchRuleFiles(g *grammar.Grammar, paths []string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			logger.Fatal("Failed to watch rule file", zap.String("path", path), zap.Error(err))
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Info("Rule file changed", zap.String("path", event.Name))
				checkRuleFiles(g, []string{event.Name})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}
