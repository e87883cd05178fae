package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/config"
	"github.com/saptools/sapgui-cli/internal/observability"
	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/version"
)

// cfg and log are resolved once in the root PersistentPreRunE and shared by
// every command.
var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sapgui-cli",
	Short: "Script a running SAP GUI session from the command line",
	Long: `A CLI tool that drives a running SAP GUI session through its scripting
interface: navigate transactions, fill fields, press buttons, harvest result
grids and render them into reports. Built for AI agents and automation
scripts; attaches to an already open session and never owns the GUI itself.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./sapgui-cli.yaml, ~/.config/sapgui-cli/)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Int("connection", -1, "Connection index (overrides config)")
	rootCmd.PersistentFlags().Int("session", -1, "Session index (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if conn, _ := rootCmd.PersistentFlags().GetInt("connection"); conn >= 0 {
			cfg.Connection = conn
		}
		if sess, _ := rootCmd.PersistentFlags().GetInt("session"); sess >= 0 {
			cfg.Session = sess
		}

		log = observability.NewLogger(cfg.Logger)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
