package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var pressCmd = &cobra.Command{
	Use:   "press NAME",
	Short: "Press a button",
	Long: `Press a button by semantic name, or by full control address with --by-id.
Toolbar buttons only have addresses ("wnd[0]/tbar[1]/btn[8]"), so they need
--by-id. Pressing triggers a roundtrip and redraws the screen.`,
	Args: cobra.ExactArgs(1),
	RunE: runPress,
}

func init() {
	rootCmd.AddCommand(pressCmd)
	pressCmd.Flags().Bool("by-id", false, "Treat NAME as a full control address")
}

func runPress(cmd *cobra.Command, args []string) error {
	byID, _ := cmd.Flags().GetBool("by-id")
	return withSession(func(s *session.Session) error {
		var err error
		if byID {
			err = s.PressButtonByID(args[0])
		} else {
			err = s.PressButton(args[0])
		}
		if err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "press", Target: args[0]})
	})
}
