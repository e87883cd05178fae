package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read the status bar",
	Long: `Read the status bar message and its severity. "failed" is true for error
and abort severities, the ones that terminate a workflow.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		msg, err := s.ReadStatus()
		if err != nil {
			return err
		}
		return output.Print(output.StatusResult{Status: msg, Failed: msg.Failed()})
	})
}
