package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

// VKeyResult is the output of the vkey command.
type VKeyResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Key    string `yaml:"key"    json:"key"`
	Code   int    `yaml:"code"   json:"code"`
	Window string `yaml:"window" json:"window"`
}

var vkeyCmd = &cobra.Command{
	Use:   "vkey KEY",
	Short: "Send a virtual key to a window",
	Long: `Send a virtual key to a window. KEY is a name (enter, f8, back, cancel,
shift-f4) or a raw key code. Targets the main window unless --window is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runVKey,
}

func init() {
	rootCmd.AddCommand(vkeyCmd)
	vkeyCmd.Flags().String("window", "", "Window address (default: wnd[0])")
}

func runVKey(cmd *cobra.Command, args []string) error {
	code, err := parseVKey(args[0])
	if err != nil {
		return err
	}
	window, _ := cmd.Flags().GetString("window")

	return withSession(func(s *session.Session) error {
		if err := s.SendVKey(code, window); err != nil {
			return err
		}
		if window == "" {
			window = "wnd[0]"
		}
		return output.Print(VKeyResult{OK: true, Key: args[0], Code: code, Window: window})
	})
}
