package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/cattrans/internal/cli"
	"codeberg.org/snonux/cattrans/internal/models"
	"codeberg.org/snonux/cattrans/internal/processor"
	"codeberg.org/snonux/cattrans/internal/report"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// SIGINT/SIGTERM abort the run before the output is written
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		report.Error(os.Stderr, "Error: %v", err)
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	ctx := cmd.Context()

	logger, err := cli.NewLogger(flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	if err := flags.Resolve(viper.GetViper()); err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), flags.OpenAIBaseURL)
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	logger.Debug("configuration resolved",
		zap.String("input", flags.Input),
		zap.String("output", flags.Output),
		zap.String("strategy", flags.Strategy))

	proc, err := processor.NewFromFlags(ctx, flags, os.Stdout, logger)
	if err != nil {
		return err
	}

	if _, err := proc.Run(ctx); err != nil {
		return err
	}
	return nil
}
