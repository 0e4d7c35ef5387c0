package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"job-agent/internal/di"
	"job-agent/internal/domain/entity"
	"job-agent/internal/infrastructure/browser/rod"
	"job-agent/internal/infrastructure/env"
	"job-agent/internal/infrastructure/llm/provider"
	"job-agent/internal/infrastructure/logger"
	"job-agent/internal/usecase/executor"
	"job-agent/internal/usecase/runner"
	"job-agent/internal/usecase/task"
)

const defaultJobSearchURL = "https://www.linkedin.com/jobs/search/?f_WT=2&keywords=frontend%20developer"

type options struct {
	mode    string
	baseDir string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "agent",
		Short:         "Fill in job applications with a browser agent",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateMode(opts.mode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", string(entity.ModeApplying), "task mode (applying)")
	cmd.Flags().StringVar(&opts.baseDir, "base-dir", ".", "directory holding resume/, instructions and the skip list")

	return cmd
}

func validateMode(mode string) error {
	if entity.Mode(mode) != entity.ModeApplying {
		return fmt.Errorf("%w: %q (supported: %s)", entity.ErrUnsupportedMode, mode, entity.ModeApplying)
	}
	return nil
}

func run(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	envService := env.NewEnvService()

	baseDir, err := filepath.Abs(opts.baseDir)
	if err != nil {
		return fmt.Errorf("resolve base dir: %w", err)
	}

	settings, err := provider.Select(envService)
	if err != nil {
		return err
	}

	log, err := logger.NewLoggerAdapter(opts.mode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	paths := task.DefaultPaths(baseDir)
	if p := envService.Get("RESUME_PATH"); p != "" {
		paths.Resume = p
	}
	composer := task.NewComposer(paths, envService.GetWithDefault("JOB_SEARCH_URL", defaultJobSearchURL))

	prompt, err := composer.Compose(entity.Mode(opts.mode))
	if err != nil {
		return err
	}

	browserCfg := rod.DefaultConfig(baseDir)
	browserCfg.Profile.Headless = envService.GetBool("BROWSER_HEADLESS", false)

	factory := di.NewAgentFactory(di.Config{
		Browser:        browserCfg,
		SkipListPath:   paths.SkipList,
		AvailableFiles: composer.AvailableFiles(),
		MaxSteps:       envService.GetInt("MAX_STEPS", executor.DefaultMaxSteps),
	}, log)

	result, err := runner.New(settings, factory, log).Run(ctx, prompt)
	if err != nil {
		return err
	}

	fmt.Println(result.FinalAnswer)
	return nil
}
