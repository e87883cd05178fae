package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Read and interact with result grids",
}

var gridReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Capture the results grid into a snapshot",
	Long: `Locate the results grid on the current screen and read it out. The grid
is found by probing the known container addresses; use --address when the
screen uses an unusual one. Cells that cannot be read come back empty,
the rest of the row is kept.`,
	RunE: runGridRead,
}

var gridDistinctCmd = &cobra.Command{
	Use:   "distinct COLUMN",
	Short: "List the distinct values of one grid column",
	Args:  cobra.ExactArgs(1),
	RunE:  runGridDistinct,
}

var gridClickCmd = &cobra.Command{
	Use:   "click ROW COLUMN",
	Short: "Click or double-click a grid cell",
	Args:  cobra.ExactArgs(2),
	RunE:  runGridClick,
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.AddCommand(gridReadCmd, gridDistinctCmd, gridClickCmd)

	gridCmd.PersistentFlags().String("address", "", "Grid control address (default: probe known paths)")
	gridReadCmd.Flags().String("columns", "", "Columns to read (comma-separated, default: all)")
	gridReadCmd.Flags().Int("max-rows", 0, "Row cap (0 = all)")
	gridClickCmd.Flags().Bool("double", false, "Double-click (drills into the row)")
}

// locateGrid resolves the grid control, honoring --address and the
// configured extra probe paths.
func locateGrid(cmd *cobra.Command, s *session.Session) (*session.Control, error) {
	address, _ := cmd.Flags().GetString("address")
	if address != "" {
		return s.FindGridByID(address)
	}
	grid := s.FindGrid("", cfg.GridPaths...)
	if grid == nil {
		return nil, fmt.Errorf("no results grid on the current screen")
	}
	return grid, nil
}

func runGridRead(cmd *cobra.Command, args []string) error {
	columnList, _ := cmd.Flags().GetString("columns")
	maxRows, _ := cmd.Flags().GetInt("max-rows")
	if maxRows == 0 {
		maxRows = cfg.MaxRows
	}
	columns := splitColumns(columnList)

	return withSession(func(s *session.Session) error {
		grid, err := locateGrid(cmd, s)
		if err != nil {
			return err
		}
		snap, err := grid.ReadAll(columns, maxRows)
		if err != nil {
			return err
		}
		return output.Print(output.GridResult{Address: grid.Address, Snapshot: snap})
	})
}

func runGridDistinct(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		grid, err := locateGrid(cmd, s)
		if err != nil {
			return err
		}
		values, err := grid.DistinctValues(args[0])
		if err != nil {
			return err
		}
		return output.Print(output.DistinctResult{Address: grid.Address, Column: args[0], Values: values})
	})
}

func runGridClick(cmd *cobra.Command, args []string) error {
	var row int
	if _, err := fmt.Sscanf(args[0], "%d", &row); err != nil || row < 0 {
		return fmt.Errorf("invalid row %q", args[0])
	}
	double, _ := cmd.Flags().GetBool("double")

	return withSession(func(s *session.Session) error {
		grid, err := locateGrid(cmd, s)
		if err != nil {
			return err
		}
		if double {
			err = grid.DoubleClickCell(row, args[1])
		} else {
			err = grid.ClickCell(row, args[1])
		}
		if err != nil {
			return err
		}
		action := "click"
		if double {
			action = "double-click"
		}
		return output.Print(SetResult{OK: true, Action: action, Target: fmt.Sprintf("%s[%d,%s]", grid.Address, row, args[1])})
	})
}
