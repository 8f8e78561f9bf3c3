package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/vitalis/internal/cli"
	"github.com/terraincognita07/vitalis/internal/config"
	"github.com/terraincognita07/vitalis/internal/db"
	"github.com/terraincognita07/vitalis/internal/logging"
	"github.com/terraincognita07/vitalis/internal/reminders"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vitalis",
		Short:         "Vitalis health-tracking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(
		newServeCommand(),
		newResetPasswordCommand(),
		newEstimateCommand(),
		newPublishPostCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newResetPasswordCommand() *cobra.Command {
	var prompt bool
	command := &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Reset a user's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadTooling()
			if err != nil {
				return err
			}
			return cli.RunResetPasswordCommand(cfg.DBPath, args[0], cli.ResetPasswordOptions{
				Prompt: prompt,
				In:     os.Stdin,
				Out:    cmd.OutOrStdout(),
			})
		},
	}
	command.Flags().BoolVar(&prompt, "prompt", false, "read the new password from stdin instead of generating a temporary one")
	return command
}

func newEstimateCommand() *cobra.Command {
	var (
		start  string
		length int
		on     string
	)
	command := &cobra.Command{
		Use:   "estimate",
		Short: "Print the days remaining until the next cycle start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadTooling()
			if err != nil {
				return err
			}
			location := resolveLocation(cfg, func(message string, tz string) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %q\n", message, tz)
			})
			return cli.RunEstimateCommand(cmd.OutOrStdout(), start, length, on, time.Now(), location)
		},
	}
	command.Flags().StringVar(&start, "start", "", "cycle start date (YYYY-MM-DD)")
	command.Flags().IntVar(&length, "length", 28, "average cycle length in days")
	command.Flags().StringVar(&on, "on", "", "reference date (YYYY-MM-DD), defaults to today")
	return command
}

func newPublishPostCommand() *cobra.Command {
	var (
		input       cli.PublishPostInput
		publishedAt string
	)
	command := &cobra.Command{
		Use:   "publish-post",
		Short: "Insert a blog post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadTooling()
			if err != nil {
				return err
			}
			input.PublishedAt = time.Now()
			if strings.TrimSpace(publishedAt) != "" {
				parsed, err := time.Parse(time.RFC3339, publishedAt)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", publishedAt, err)
				}
				input.PublishedAt = parsed
			}
			return cli.RunPublishPostCommand(cfg.DBPath, input, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&input.Title, "title", "", "post title")
	command.Flags().StringVar(&input.Summary, "summary", "", "short summary shown in listings")
	command.Flags().StringVar(&input.BodyPath, "body-file", "", "path to the post body")
	command.Flags().StringVar(&publishedAt, "at", "", "publication time (RFC3339), defaults to now")
	_ = command.MarkFlagRequired("title")
	_ = command.MarkFlagRequired("body-file")
	return command
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	location := resolveLocation(cfg, func(message string, tz string) {
		log.Warn(message, zap.String("tz", tz))
	})
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath, db.WithLogger(log))
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	app, handler, err := newApp(cfg, database, location, log)
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	scheduler := reminders.NewScheduler(handler.Repositories().Cycles, location, cfg.ReminderLeadDays, log)
	if err := scheduler.Start(sigCtx, cfg.ReminderSchedule); err != nil {
		return err
	}

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("vitalis listening",
		zap.String("addr", "0.0.0.0:"+cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// resolveLocation returns the configured zone, reporting an unknown TZ
// through warn before falling back to UTC.
func resolveLocation(cfg *config.Config, warn func(message string, tz string)) *time.Location {
	location, ok := cfg.Location()
	if !ok {
		warn("invalid TZ, falling back to UTC", cfg.TZ)
	}
	return location
}
