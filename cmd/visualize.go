package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize ADDRESS on|off",
	Short: "Toggle the debug frame around a control",
	Long: `Draw (or clear) the red debug frame around a control, for checking that
an address resolves to the element you think it does.`,
	Args: cobra.ExactArgs(2),
	RunE: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	var on bool
	switch args[1] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return fmt.Errorf("invalid state %q: use on or off", args[1])
	}

	return withSession(func(s *session.Session) error {
		if err := s.Visualize(args[0], on); err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "visualize", Target: args[0], Value: args[1]})
	})
}
