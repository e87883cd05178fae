package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

// TxResult is the output of the transaction commands.
type TxResult struct {
	OK     bool   `yaml:"ok"                json:"ok"`
	Action string `yaml:"action"            json:"action"`
	Code   string `yaml:"code,omitempty"    json:"code,omitempty"`
	Status string `yaml:"status,omitempty"  json:"status,omitempty"`
}

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Navigate transactions",
}

var txStartCmd = &cobra.Command{
	Use:   "start CODE",
	Short: "Start a transaction by code",
	Long: `Start a transaction by code, e.g. "SE16H" or "FBL1N". The status bar
is read afterwards so a refused navigation shows up in the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runTxStart,
}

var txEndCmd = &cobra.Command{
	Use:   "end",
	Short: "Leave the current transaction",
	Args:  cobra.NoArgs,
	RunE:  runTxEnd,
}

var txCmdCmd = &cobra.Command{
	Use:   "cmd COMMAND",
	Short: "Execute a raw command string",
	Long: `Execute a raw command string, the equivalent of typing into the command
field: "/nSE16" starts a transaction, "/n" resets, "/o" opens a session list.`,
	Args: cobra.ExactArgs(1),
	RunE: runTxCmd,
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txStartCmd, txEndCmd, txCmdCmd)
}

func runTxStart(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		if err := s.StartTransaction(args[0]); err != nil {
			return err
		}
		status, err := s.StatusError()
		if err != nil {
			return fmt.Errorf("transaction started but status unreadable: %w", err)
		}
		return output.Print(TxResult{OK: status == "", Action: "start", Code: args[0], Status: status})
	})
}

func runTxEnd(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		if err := s.EndTransaction(); err != nil {
			return err
		}
		return output.Print(TxResult{OK: true, Action: "end"})
	})
}

func runTxCmd(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		if err := s.SendCommand(args[0]); err != nil {
			return err
		}
		return output.Print(TxResult{OK: true, Action: "command", Code: args[0]})
	})
}
