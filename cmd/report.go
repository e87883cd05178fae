package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/report"
	"github.com/saptools/sapgui-cli/internal/session"
	"github.com/saptools/sapgui-cli/internal/workflow"
)

// ReportResult is the output of the report commands.
type ReportResult struct {
	Transaction string             `yaml:"transaction"    json:"transaction"`
	Rows        int                `yaml:"rows"           json:"rows"`
	Total       int                `yaml:"total"          json:"total"`
	Xlsx        string             `yaml:"xlsx,omitempty" json:"xlsx,omitempty"`
	Snapshot    model.GridSnapshot `yaml:"snapshot"       json:"snapshot"`
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run complete parametrize-execute-harvest workflows",
}

var reportTableCmd = &cobra.Command{
	Use:   "table TABLE FIELD...",
	Short: "Query a database table through the table browser",
	Long: `Query a table through the generic table browser (SE16H). Each FIELD is
NAME[:group][:sum][=VALUE]:

  sapgui-cli report table BSIS BUKRS:group GJAHR=2025 DMBTR:sum

Grouping adds a COUNT column to the harvest. A remote-reported error (bad
table name, no authorization) produces an empty result, not a failure.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReportTable,
}

var reportTxCmd = &cobra.Command{
	Use:   "tx CODE [NAME=VALUE...]",
	Short: "Run a report transaction and harvest its grid",
	Long: `Open a report transaction (FBL1N, ME2M, VA05, ...), fill its selection
screen from NAME=VALUE arguments, execute and read the results grid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReportTx,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportTableCmd, reportTxCmd)

	reportCmd.PersistentFlags().Int("max-rows", 0, "Row cap (0 = all)")
	reportCmd.PersistentFlags().String("xlsx", "", "Also render the harvest into an Excel workbook at this path")
	reportCmd.PersistentFlags().String("title", "", "Workbook title (default: the transaction)")
	reportCmd.PersistentFlags().Bool("lock", false, "Hold the UI lock while the workflow runs")
	reportTxCmd.Flags().String("execute-key", "f8", "Virtual key that executes the report")
	reportTxCmd.Flags().String("columns", "", "Columns to harvest (comma-separated, default: all)")
}

// runWorkflow runs fn, optionally under the UI lock, and prints the harvest.
func runWorkflow(cmd *cobra.Command, label string, fn func(*session.Session) (model.GridSnapshot, error)) error {
	lock, _ := cmd.Flags().GetBool("lock")
	xlsx, _ := cmd.Flags().GetString("xlsx")
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = label
	}

	return withSession(func(s *session.Session) error {
		var snap model.GridSnapshot
		run := func() error {
			var err error
			snap, err = fn(s)
			return err
		}
		var err error
		if lock || cfg.LockUI {
			err = s.WithLockedUI(run)
		} else {
			err = run()
		}
		if err != nil {
			return err
		}

		result := ReportResult{Transaction: label, Rows: len(snap.Rows), Total: snap.Total, Snapshot: snap}
		if xlsx != "" {
			if err := report.WriteWorkbook(xlsx, report.Meta{Title: title}, snap); err != nil {
				return err
			}
			result.Xlsx = xlsx
		}
		return output.Print(result)
	})
}

func runReportTable(cmd *cobra.Command, args []string) error {
	fields, err := parseFieldSpecs(args[1:])
	if err != nil {
		return err
	}
	maxRows, _ := cmd.Flags().GetInt("max-rows")
	if maxRows == 0 {
		maxRows = cfg.MaxRows
	}

	return runWorkflow(cmd, "SE16H "+args[0], func(s *session.Session) (model.GridSnapshot, error) {
		return workflow.TableQuery(s, workflow.TableQueryOptions{
			Table:   args[0],
			Fields:  fields,
			MaxRows: maxRows,
			Dismiss: cfg.PopupDismiss,
		})
	})
}

func runReportTx(cmd *cobra.Command, args []string) error {
	selection, err := parseSelection(args[1:])
	if err != nil {
		return err
	}
	executeKey, _ := cmd.Flags().GetString("execute-key")
	code, err := parseVKey(executeKey)
	if err != nil {
		return err
	}
	if code == session.VKeyEnter {
		code = workflow.ExecuteWithEnter
	}
	columnList, _ := cmd.Flags().GetString("columns")
	columns := splitColumns(columnList)
	maxRows, _ := cmd.Flags().GetInt("max-rows")
	if maxRows == 0 {
		maxRows = cfg.MaxRows
	}

	return runWorkflow(cmd, args[0], func(s *session.Session) (model.GridSnapshot, error) {
		return workflow.Report(s, workflow.ReportOptions{
			Transaction: args[0],
			Selection:   selection,
			ExecuteVKey: code,
			Columns:     columns,
			MaxRows:     maxRows,
			Dismiss:     cfg.PopupDismiss,
		})
	})
}
