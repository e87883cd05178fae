package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Read and write table control cells",
	Long: `Read and write cells of classic table controls, where every cell is its
own addressable element. Cells are located by the table's address, the
column's field name and a [column,row] index pair.`,
}

var tableGetCmd = &cobra.Command{
	Use:   "get TABLE COLUMN ROW",
	Short: "Read one table cell",
	Args:  cobra.ExactArgs(3),
	RunE:  runTableGet,
}

var tableSetCmd = &cobra.Command{
	Use:   "set TABLE COLUMN COL ROW VALUE",
	Short: "Write one table cell",
	Args:  cobra.ExactArgs(5),
	RunE:  runTableSet,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.AddCommand(tableGetCmd, tableSetCmd)
}

func parseIndex(arg, what string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return n, nil
}

func runTableGet(cmd *cobra.Command, args []string) error {
	row, err := parseIndex(args[2], "row")
	if err != nil {
		return err
	}
	return withSession(func(s *session.Session) error {
		value := s.TableCell(args[0], args[1], row)
		return output.Print(output.FieldResult{Field: fmt.Sprintf("%s/%s[%d]", args[0], args[1], row), Value: value})
	})
}

func runTableSet(cmd *cobra.Command, args []string) error {
	col, err := parseIndex(args[2], "column index")
	if err != nil {
		return err
	}
	row, err := parseIndex(args[3], "row")
	if err != nil {
		return err
	}
	return withSession(func(s *session.Session) error {
		if err := s.SetTableCell(args[0], args[1], col, row, args[4]); err != nil {
			return err
		}
		return output.Print(SetResult{
			OK:     true,
			Action: "set",
			Target: fmt.Sprintf("%s/%s[%d,%d]", args[0], args[1], col, row),
			Value:  args[4],
		})
	})
}
