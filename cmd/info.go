package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show metadata of the attached session",
	Long: `Show session metadata: system, client, user, current transaction,
program and screen number. Pure query; nothing on the remote side changes.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		info, err := s.Info()
		if err != nil {
			return err
		}
		return output.Print(output.InfoResult{Session: info})
	})
}
