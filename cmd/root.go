package cmd

import (
	"github.com/alphaO4/whitehouse-archive/internal/logging"
	"github.com/alphaO4/whitehouse-archive/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitearchiver",
		Short: "Archives a web page and its related articles via the Wayback Machine.",
		Long: `sitearchiver submits a seed page to the Wayback Machine, discovers
same-domain article links on that page, archives each of them in turn, and
keeps a local CSV manifest plus a copy of every snapshot it downloads.`,
	}

	// Initialize Viper configuration. The --config flag is read lazily so the
	// value is available by the time OnInitialize fires.
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	// Define persistent flags.
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sitearchiver/config.yaml)")

	// Add subcommands.
	cmd.AddCommand(newArchiveCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	// Initialize the logger once at the very start.
	logging.InitLogger()

	// Create and execute the root command.
	if err := newRootCmd().Execute(); err != nil {
		logging.L.Fatal("Command execution failed", zap.Error(err))
	}
}
