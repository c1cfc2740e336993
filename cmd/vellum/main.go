// Command vellum is a terminal Markdown editor.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vellumtext/vellum"
	"github.com/vellumtext/vellum/internal/config"
	"github.com/vellumtext/vellum/internal/logging"
)

var (
	flagLineNums bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:     "vellum [file]",
	Short:   "A terminal Markdown editor",
	Long:    "Vellum is a small terminal editor for Markdown with line wrapping,\nundo, search and replace, and inline highlighting.",
	Version: vellum.Version(),
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("line-numbers") {
			cfg.UI.LineNumbers = flagLineNums
		}
		if flagDebug {
			cfg.Debug = true
		}

		logging.Init(logging.Options{
			Path:       cfg.Log.File,
			Debug:      cfg.Debug,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		})
		defer logging.Close()

		filename := ""
		if len(args) == 1 {
			filename = args[0]
		}

		app, err := newApp(cfg, filename)
		if err != nil {
			return err
		}

		logging.Info("starting", "version", vellum.Version(), "file", filename)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagLineNums, "line-numbers", "n", false, "show line numbers")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
