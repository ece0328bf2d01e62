package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	flagRegion   string
	flagEndpoint string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := &cobra.Command{
		Use:           "autoscale",
		Short:         "Inspect and manage Auto Scaling groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := parseLogLevel(flagLogLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      logLevel,
					TimeFormat: time.Kitchen,
				}),
			))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flagRegion, "region", "", "AWS region (defaults to the environment configuration)")
	root.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "override the service endpoint URL")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGroupsCmd(),
		newLaunchConfigsCmd(),
		newPoliciesCmd(),
		newActivitiesCmd(),
		newInstancesCmd(),
		newSetDesiredCapacityCmd(),
		newRegionsCmd(),
		newVersionCmd(),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}
