package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting/scripttest"
)

func resultGrid(rows int, columns ...string) *scripttest.Component {
	return &scripttest.Component{
		IDVal:   "wnd[0]/usr/cntlRESULT_LIST/shellcont/shell",
		TypeVal: "GuiShell",
		Rows:    rows,
		Columns: columns,
		Cells:   make(map[string]string),
	}
}

func TestFindGridProbesRankedPaths(t *testing.T) {
	grid := &scripttest.Component{
		IDVal:   "wnd[0]/usr/cntlGRID1/shellcont/shell",
		TypeVal: "GuiShell",
		Columns: []string{"A"},
	}
	s := newTestSession(scripttest.New().Add(grid))

	c := s.FindGrid("")
	if c == nil {
		t.Fatal("FindGrid returned nil")
	}
	if c.Address != grid.IDVal {
		t.Errorf("resolved %s", c.Address)
	}
	if c.Kind != model.KindGrid {
		t.Errorf("kind = %q, want grid after coercion", c.Kind)
	}
}

func TestFindGridNoMatch(t *testing.T) {
	s := newTestSession(scripttest.New())
	if c := s.FindGrid(""); c != nil {
		t.Errorf("FindGrid = %+v, want nil", c)
	}
}

func TestFindGridExtraPath(t *testing.T) {
	grid := &scripttest.Component{
		IDVal:   "wnd[0]/usr/cntlCUSTOM/shellcont/shell",
		TypeVal: "GuiShell",
	}
	s := newTestSession(scripttest.New().Add(grid))

	if c := s.FindGrid("", "cntlCUSTOM/shellcont/shell"); c == nil {
		t.Error("extra probe path not tried")
	}
}

func TestFindGridByIDCoercesShell(t *testing.T) {
	grid := resultGrid(1, "MATNR")
	grid.Cells[scripttest.CellKey(0, "MATNR")] = "M1"
	s := newTestSession(scripttest.New().Add(grid))

	c, err := s.FindGridByID(grid.IDVal)
	if err != nil {
		t.Fatalf("FindGridByID: %v", err)
	}
	if c.Kind != model.KindGrid {
		t.Errorf("kind = %q, want grid after coercion", c.Kind)
	}
	snap, err := c.ReadAll(nil, 0)
	if err != nil {
		t.Fatalf("ReadAll on explicitly addressed grid: %v", err)
	}
	if len(snap.Rows) != 1 || snap.Rows[0]["MATNR"] != "M1" {
		t.Errorf("rows = %+v", snap.Rows)
	}
}

func TestFindGridByIDMiss(t *testing.T) {
	s := newTestSession(scripttest.New())
	if _, err := s.FindGridByID("wnd[0]/usr/cntlNOPE/shellcont/shell"); err == nil {
		t.Error("missing address returned no error")
	}
	var nf *NotFoundError
	_, err := s.FindGridByID("wnd[0]/usr/cntlNOPE/shellcont/shell")
	if !errors.As(err, &nf) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestReadAll(t *testing.T) {
	grid := resultGrid(3, "MATNR", "WERKS", "COUNT")
	for row := 0; row < 3; row++ {
		grid.Cells[scripttest.CellKey(row, "MATNR")] = "M" + string(rune('1'+row))
		grid.Cells[scripttest.CellKey(row, "WERKS")] = "1000"
		grid.Cells[scripttest.CellKey(row, "COUNT")] = "5"
	}
	s := newTestSession(scripttest.New().Add(grid))

	snap, err := s.FindGrid("").ReadAll(nil, 0)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !reflect.DeepEqual(snap.Columns, []string{"MATNR", "WERKS", "COUNT"}) {
		t.Errorf("columns = %v", snap.Columns)
	}
	if len(snap.Rows) != 3 || snap.Total != 3 {
		t.Fatalf("rows = %d, total = %d", len(snap.Rows), snap.Total)
	}
	if snap.Rows[1]["MATNR"] != "M2" {
		t.Errorf("row 1 MATNR = %q", snap.Rows[1]["MATNR"])
	}
}

func TestReadAllDegradesFailingColumn(t *testing.T) {
	grid := resultGrid(4, "A", "B", "C")
	grid.FailColumns = map[string]bool{"B": true}
	for row := 0; row < 4; row++ {
		grid.Cells[scripttest.CellKey(row, "A")] = "a"
		grid.Cells[scripttest.CellKey(row, "C")] = "c"
	}
	s := newTestSession(scripttest.New().Add(grid))

	snap, err := s.FindGrid("").ReadAll(nil, 0)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(snap.Rows) != 4 {
		t.Fatalf("rows = %d, want all 4 despite the failing column", len(snap.Rows))
	}
	for i, row := range snap.Rows {
		if row["B"] != "" {
			t.Errorf("row %d B = %q, want empty", i, row["B"])
		}
		if row["A"] != "a" || row["C"] != "c" {
			t.Errorf("row %d healthy cells lost: %v", i, row)
		}
		if len(row) != 3 {
			t.Errorf("row %d has %d columns, want full column set", i, len(row))
		}
	}
}

func TestReadAllMaxRows(t *testing.T) {
	grid := resultGrid(100, "A")
	for row := 0; row < 100; row++ {
		grid.Cells[scripttest.CellKey(row, "A")] = "x"
	}
	s := newTestSession(scripttest.New().Add(grid))

	snap, err := s.FindGrid("").ReadAll(nil, 10)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(snap.Rows) != 10 {
		t.Errorf("rows = %d, want capped at 10", len(snap.Rows))
	}
	if snap.Total != 100 {
		t.Errorf("total = %d, want the uncapped count", snap.Total)
	}
}

func TestDistinctValues(t *testing.T) {
	grid := resultGrid(5, "WERKS")
	for row, v := range []string{" 1000", "2000", "1000 ", "3000", "2000"} {
		grid.Cells[scripttest.CellKey(row, "WERKS")] = v
	}
	s := newTestSession(scripttest.New().Add(grid))

	values, err := s.FindGrid("").DistinctValues("WERKS")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	want := []string{"1000", "2000", "3000"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestDistinctValuesPropagatesErrors(t *testing.T) {
	grid := resultGrid(2, "A")
	grid.FailColumns = map[string]bool{"A": true}
	s := newTestSession(scripttest.New().Add(grid))

	if _, err := s.FindGrid("").DistinctValues("A"); err == nil {
		t.Error("failing cell read returned no error")
	}
}

func TestDoubleClickCellInvalidates(t *testing.T) {
	s := newTestSession(scripttest.New().Add(resultGrid(1, "A")))
	c := s.FindGrid("")

	before := s.Generation()
	if err := c.DoubleClickCell(0, "A"); err != nil {
		t.Fatalf("DoubleClickCell: %v", err)
	}
	if s.Generation() == before {
		t.Error("generation unchanged after drill-down")
	}
}

func TestGridOpsRejectNonGrid(t *testing.T) {
	field := &scripttest.Component{IDVal: "wnd[0]/usr/txtA", TypeVal: "GuiTextField"}
	s := newTestSession(scripttest.New().Add(field))

	c, _ := s.FindByID(field.IDVal)
	_, err := c.ReadAll(nil, 0)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Errorf("ReadAll on text field err = %v, want TypeMismatchError", err)
	}
}
