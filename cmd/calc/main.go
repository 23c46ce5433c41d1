// Package main is the entry point for the calc command line calculator.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/60-lines-of-python/calculator"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression ...]",
	Short: "Four-function command line calculator",
	Long: `Calc evaluates arithmetic expressions: + - * /, parentheses, unary
minus, and integer or decimal literals. With arguments, each argument is
evaluated as one expression. Without arguments, calc starts an interactive
session that reads one expression per line.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ")"
	rootCmd.SetVersionTemplate("calc version {{.Version}}\n")

	rootCmd.Flags().String("config", "", "config file (default ~/.calc.yaml)")
	rootCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("history", "", "interactive history file")
	rootCmd.Flags().String("prompt", "", "interactive prompt")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("history"); v != "" {
		cfg.History = v
	}
	if v, _ := cmd.Flags().GetString("prompt"); v != "" {
		cfg.Prompt = v
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)

	if len(args) > 0 {
		for _, arg := range args {
			v, err := calculator.EvalString(arg)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			fmt.Println(v)
		}
		return nil
	}
	return repl(cfg, logger)
}
