package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select radio buttons, tabs and combo box entries",
}

var selectRadioCmd = &cobra.Command{
	Use:   "radio NAME",
	Short: "Select a radio button by semantic name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelectRadio,
}

var selectTabCmd = &cobra.Command{
	Use:   "tab ADDRESS",
	Short: "Select a tab by full control address",
	Long: `Select a tab by full control address, e.g.
"wnd[0]/usr/tabsTAB_STRIP/tabpDETAILS". Selecting a tab redraws the screen.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelectTab,
}

var selectComboCmd = &cobra.Command{
	Use:   "combo NAME KEY",
	Short: "Pick a combo box entry by key",
	Args:  cobra.ExactArgs(2),
	RunE:  runSelectCombo,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	selectCmd.AddCommand(selectRadioCmd, selectTabCmd, selectComboCmd)
}

func runSelectRadio(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		if err := s.SelectRadio(args[0]); err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "radio", Target: args[0]})
	})
}

func runSelectTab(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		if err := s.SelectTab(args[0]); err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "tab", Target: args[0]})
	})
}

func runSelectCombo(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		if err := s.SelectComboKey(args[0], args[1]); err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "combo", Target: args[0], Value: args[1]})
	})
}
