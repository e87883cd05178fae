package session

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/model"
)

// GridProbePaths are the known grid container addresses, relative to the
// searched container and ranked by how commonly report screens use them.
// FindGrid tries them in order; first match wins.
var GridProbePaths = []string{
	"cntlRESULT_LIST/shellcont/shell",
	"cntlCONTAINER/shellcont/shell",
	"cntlGRID1/shellcont/shell",
	"cntlGRID/shellcont/shell",
	"cntlALV_CONTAINER/shellcont/shell",
}

// FindGrid probes the ranked container addresses for a grid control,
// searching under the main window user area when containerID is empty.
// Tolerant: returns nil when no probe matches — some parameter combinations
// legitimately produce no results grid.
func (s *Session) FindGrid(containerID string, extraPaths ...string) *Control {
	if containerID == "" {
		containerID = model.UserArea
	}
	paths := append(append([]string(nil), GridProbePaths...), extraPaths...)
	for _, p := range paths {
		c := s.LookupByID(containerID + "/" + p)
		if c == nil {
			continue
		}
		if c = asGrid(c); c.Kind == model.KindGrid {
			return c
		}
	}
	return nil
}

// asGrid coerces shell-typed controls to the grid kind. Grid views sit
// inside shell containers; the raw type may read as the shell rather than
// the grid itself.
func asGrid(c *Control) *Control {
	if c.Kind == model.KindShell || c.Kind == model.KindUnknown {
		c.Kind = model.KindGrid
	}
	return c
}

// FindGridByID resolves a grid by its full address, with the same shell
// coercion the probe applies. Strict: a miss is a NotFoundError.
func (s *Session) FindGridByID(id string) (*Control, error) {
	c, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	return asGrid(c), nil
}

// GridColumns returns the column identifiers in configured display order.
func (c *Control) GridColumns() ([]string, error) {
	if err := c.check("read columns", model.KindGrid); err != nil {
		return nil, err
	}
	return c.raw.ColumnOrder()
}

// GridRowCount returns the number of rows the grid reports.
func (c *Control) GridRowCount() (int, error) {
	if err := c.check("read row count", model.KindGrid); err != nil {
		return 0, err
	}
	return c.raw.RowCount()
}

// GridColumnTitles maps column identifiers to their displayed titles. A
// title that cannot be read falls back to the identifier.
func (c *Control) GridColumnTitles() (map[string]string, error) {
	columns, err := c.GridColumns()
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(columns))
	for _, col := range columns {
		title, err := c.raw.ColumnTitle(col)
		if err != nil || title == "" {
			title = col
		}
		titles[col] = title
	}
	return titles, nil
}

// ReadAll captures the grid into a snapshot. Column identity is resolved
// first (all columns when none are given), then rows are walked up to
// maxRows (0 = unbounded). A failed cell read degrades to an empty string
// for that cell only: the row is still emitted with its full column set,
// because heterogeneous grids may hold unreadable cell types at some
// coordinates.
func (c *Control) ReadAll(columns []string, maxRows int) (model.GridSnapshot, error) {
	if len(columns) == 0 {
		all, err := c.GridColumns()
		if err != nil {
			return model.GridSnapshot{}, err
		}
		columns = all
	} else if err := c.check("read grid", model.KindGrid); err != nil {
		return model.GridSnapshot{}, err
	}

	reported, err := c.raw.RowCount()
	if err != nil {
		return model.GridSnapshot{}, err
	}
	total := reported
	if maxRows > 0 && total > maxRows {
		total = maxRows
	}

	rows := make([]model.Row, 0, total)
	for row := 0; row < total; row++ {
		record := make(model.Row, len(columns))
		for _, col := range columns {
			value, err := c.raw.CellValue(row, col)
			if err != nil {
				value = "" // partial-failure tolerance
			}
			record[col] = value
		}
		rows = append(rows, record)
	}

	c.sess.log.Info("grid read",
		zap.Int("rows", total),
		zap.Int("columns", len(columns)))
	return model.GridSnapshot{Columns: columns, Rows: rows, Total: reported}, nil
}

// DistinctValues folds every row's value for one column into a set after
// trimming surrounding whitespace, returned sorted.
func (c *Control) DistinctValues(column string) ([]string, error) {
	if err := c.check("read distinct", model.KindGrid); err != nil {
		return nil, err
	}
	total, err := c.raw.RowCount()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for row := 0; row < total; row++ {
		value, err := c.raw.CellValue(row, column)
		if err != nil {
			return nil, err
		}
		seen[strings.TrimSpace(value)] = true
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// ClickCell clicks one grid cell.
func (c *Control) ClickCell(row int, column string) error {
	if err := c.check("click cell", model.KindGrid); err != nil {
		return err
	}
	return c.raw.ClickCell(row, column)
}

// DoubleClickCell double-clicks one grid cell. This usually drills into the
// row and redraws the screen, so resolved addresses are invalidated.
func (c *Control) DoubleClickCell(row int, column string) error {
	if err := c.check("double-click cell", model.KindGrid); err != nil {
		return err
	}
	c.sess.bump()
	return c.raw.DoubleClickCell(row, column)
}

// SelectRowSpec selects grid rows by specification, e.g. "0,1,3-5".
func (c *Control) SelectRowSpec(spec string) error {
	if err := c.check("select rows", model.KindGrid); err != nil {
		return err
	}
	return c.raw.SelectRows(spec)
}

// SetCurrentCell moves the grid cursor to one cell.
func (c *Control) SetCurrentCell(row int, column string) error {
	if err := c.check("set current cell", model.KindGrid); err != nil {
		return err
	}
	return c.raw.SetCurrentCell(row, column)
}
