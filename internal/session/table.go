package session

import (
	"fmt"

	"github.com/saptools/sapgui-cli/internal/model"
)

// Table controls are structurally different from grids: there is no uniform
// "get cell" call. Each cell is its own control, addressed by a typed prefix
// and a [column,row] index pair synthesized onto the table's address. The
// prefix depends on the cell's field type, which the scripting surface does
// not reveal up front — hence the two-step ladder below.

// tableCellPrefixes is the ordered ladder of typed prefixes tried when
// addressing a table cell.
var tableCellPrefixes = []string{"ctxt", "txt"}

// TableCell reads one table-control cell by column field name and row
// index, trying each prefix convention in turn. Both misses degrade to an
// empty string; a cell that truly does not exist is indistinguishable from
// an unreadable one at this surface.
func (s *Session) TableCell(tableID, column string, row int) string {
	for _, prefix := range tableCellPrefixes {
		c := s.LookupByID(model.CellAddress(tableID, prefix, column, 0, row))
		if c == nil {
			continue
		}
		if v, err := c.Text(); err == nil {
			return v
		}
	}
	return ""
}

// SetTableCell writes one table-control cell, probing the prefix ladder.
// Exhausting the ladder is ErrNoCompatibleControl: the caller asked for a
// concrete cell and nothing writable answers at either convention.
func (s *Session) SetTableCell(tableID, column string, col, row int, value string) error {
	for _, prefix := range tableCellPrefixes {
		c := s.LookupByID(model.CellAddress(tableID, prefix, column, col, row))
		if c == nil {
			continue
		}
		if err := c.SetText(value); err == nil {
			return nil
		}
	}
	return fmt.Errorf("table cell %s[%d,%d] %q: %w", tableID, col, row, column, ErrNoCompatibleControl)
}

// SetTableCheckbox sets a checkbox cell inside a table control.
func (s *Session) SetTableCheckbox(tableID, column string, col, row int, checked bool) error {
	return s.SetCheckboxByID(model.CellAddress(tableID, "chk", column, col, row), checked)
}
