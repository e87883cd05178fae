package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var popupCmd = &cobra.Command{
	Use:   "popup",
	Short: "Dismiss a modal popup if one is open",
	Long: `Check for a modal popup window (wnd[1]) and press its dismiss control.
Reports dismissed: false when no popup is open; that is not an error.`,
	RunE: runPopup,
}

func init() {
	rootCmd.AddCommand(popupCmd)
	popupCmd.Flags().String("button", "", "Dismiss control address (default: first toolbar button of wnd[1])")
}

func runPopup(cmd *cobra.Command, args []string) error {
	button, _ := cmd.Flags().GetString("button")
	if button == "" {
		button = cfg.PopupDismiss
	}
	return withSession(func(s *session.Session) error {
		dismissed, err := s.HandlePopup(button)
		if err != nil {
			return err
		}
		result := output.PopupResult{Dismissed: dismissed}
		if dismissed {
			if button == "" {
				result.Button = session.DefaultPopupDismiss
			} else {
				result.Button = button
			}
		}
		return output.Print(result)
	})
}
