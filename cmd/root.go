package cmd

import (
	"alarmclock/internal/di"
	"alarmclock/internal/providers"
	"alarmclock/internal/structures"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is overridden at build time with -ldflags "-X alarmclock/cmd.Version=...".
var Version = "dev"

var (
	runTUI = func(ctx context.Context, flags *structures.CliFlags) error {
		program, err := di.InitTUI(flags)
		if err != nil {
			return err
		}
		return program.Run(ctx)
	}
	runServe = func(ctx context.Context, flags *structures.CliFlags) error {
		app, err := di.InitApp(flags)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	}
)

func bindFlags(fs *pflag.FlagSet, flags *structures.CliFlags) {
	fs.StringVarP(&flags.ConfigPath, "config", "c", "./config.yaml", "path to the YAML config file")
	fs.BoolVarP(&flags.DebugMode, "debug", "d", false, "force debug logging")
	fs.BoolVar(&flags.Ephemeral, "ephemeral", false, "keep alarms in memory only")
}

func NewRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:   "alarmclock",
		Short: "A terminal alarm clock",
		Long: `alarmclock keeps a list of daily alarms, checks them every second and
vibrates (rings the terminal bell) when one is due. Run without a subcommand
for the interactive screen, or "serve" for a headless daemon with an HTTP API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}
	bindFlags(root.PersistentFlags(), flags)

	root.AddCommand(newServeCmd(flags), newVersionCmd())
	return root
}

func newServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the alarm scheduler with the HTTP control API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", providers.AppName, Version)
		},
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
