package model

import (
	"fmt"
	"strings"
)

// Well-known addresses in the scripting object hierarchy. The main window is
// always wnd[0]; a modal popup, when present, is wnd[1].
const (
	MainWindow  = "wnd[0]"
	PopupWindow = "wnd[1]"
	UserArea    = "wnd[0]/usr"
	StatusBar   = "wnd[0]/sbar"
)

// An address is a hierarchical path like "wnd[0]/usr/ctxtGD-TAB[0,3]". It is
// only valid within the current screen state: any navigating operation
// invalidates every previously resolved address.

// CellAddress synthesizes the address of one table-control cell from the
// typed prefix, the column's field name and the [column,row] index pair:
// "<tableID>/<prefix><COLUMN>[<col>,<row>]".
func CellAddress(tableID, prefix, column string, col, row int) string {
	return fmt.Sprintf("%s/%s%s[%d,%d]", tableID, prefix, column, col, row)
}

// SplitPrefix separates the typed prefix from the field name in the last
// segment of an address. "ctxtGD-TAB" yields ("ctxt", "GD-TAB"); segments
// with no known prefix yield ("", segment).
func SplitPrefix(segment string) (prefix, name string) {
	// Longest prefixes first so "tabp" is not misread as "txt"-class.
	for _, p := range []string{"tabp", "ctxt", "txt", "lbl", "chk", "rad", "cmb", "btn"} {
		if strings.HasPrefix(segment, p) && len(segment) > len(p) {
			return p, segment[len(p):]
		}
	}
	return "", segment
}

// LastSegment returns the final path component of an address, with any
// trailing [col,row] index stripped.
func LastSegment(address string) string {
	seg := address
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.Index(seg, "["); i >= 0 {
		seg = seg[:i]
	}
	return seg
}
