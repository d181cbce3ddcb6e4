package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:   "payconsole",
		Short: "Interactive console payment system",
		Long: `payconsole registers users, logs them in and processes card, wallet and
transfer payments from an interactive menu. Every processed payment is appended
to the payment log file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default: configs/<env>.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.environment, "env", "e", "", "Environment name (overrides PAY_ENV)")

	rootCmd.AddCommand(runCmd(&opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func runCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *opts)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "payconsole %s\n", version)
		},
	}
}
