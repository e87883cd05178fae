package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check NAME on|off",
	Short: "Set a checkbox",
	Long: `Set a checkbox by semantic name, or by full control address with --by-id.
The second argument is "on" or "off".`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("by-id", false, "Treat NAME as a full control address")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var checked bool
	switch args[1] {
	case "on", "true":
		checked = true
	case "off", "false":
		checked = false
	default:
		return fmt.Errorf("invalid state %q: use on or off", args[1])
	}

	byID, _ := cmd.Flags().GetBool("by-id")
	return withSession(func(s *session.Session) error {
		var err error
		if byID {
			err = s.SetCheckboxByID(args[0], checked)
		} else {
			err = s.SetCheckbox(args[0], checked)
		}
		if err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "check", Target: args[0], Value: strconv.FormatBool(checked)})
	})
}
