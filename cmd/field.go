package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

// SetResult is the output of the state-changing control commands.
type SetResult struct {
	OK     bool   `yaml:"ok"              json:"ok"`
	Action string `yaml:"action"          json:"action"`
	Target string `yaml:"target"          json:"target"`
	Value  string `yaml:"value,omitempty" json:"value,omitempty"`
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Read and write screen fields",
}

var fieldSetCmd = &cobra.Command{
	Use:   "set NAME VALUE",
	Short: "Write a field by semantic name or full address",
	Long: `Write a field. By default NAME is the semantic field name and the control
type is probed automatically (character fields, plain text fields, combo
boxes, in that order). With --by-id, NAME is the full control address and
resolution is strict.`,
	Args: cobra.ExactArgs(2),
	RunE: runFieldSet,
}

var fieldGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Read a field by semantic name or full address",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldGet,
}

func init() {
	rootCmd.AddCommand(fieldCmd)
	fieldCmd.AddCommand(fieldSetCmd, fieldGetCmd)
	fieldSetCmd.Flags().Bool("by-id", false, "Treat NAME as a full control address")
	fieldGetCmd.Flags().Bool("by-id", false, "Treat NAME as a full control address")
}

func runFieldSet(cmd *cobra.Command, args []string) error {
	byID, _ := cmd.Flags().GetBool("by-id")
	return withSession(func(s *session.Session) error {
		var err error
		if byID {
			err = s.SetFieldByID(args[0], args[1])
		} else {
			err = s.SetField(args[0], args[1])
		}
		if err != nil {
			return err
		}
		return output.Print(SetResult{OK: true, Action: "set", Target: args[0], Value: args[1]})
	})
}

func runFieldGet(cmd *cobra.Command, args []string) error {
	byID, _ := cmd.Flags().GetBool("by-id")
	return withSession(func(s *session.Session) error {
		var value string
		var err error
		if byID {
			value, err = s.GetFieldByID(args[0])
		} else {
			value, err = s.GetField(args[0])
		}
		if err != nil {
			return err
		}
		return output.Print(output.FieldResult{Field: args[0], Value: value})
	})
}
