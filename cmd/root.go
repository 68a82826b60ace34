package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/config"
)

var (
	cfgPath  string
	logLevel string
	cfg      = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "warstats",
	Short: "Strategy game combat log stats",
	Long: `Parse a pasted game log and summarise, per player, the troops killed and lost
while attacking and defending, kill/death ratios, and troops gained from bonuses.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to TOML config (default ~/.warstats/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error or disabled (overrides LOGLEVEL)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(shellCmd)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	config.SetupEnvironment()
	if logLevel != "" {
		config.SetLogLevel(logLevel)
	}

	path := cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded
	return nil
}
