package workflow

import (
	"reflect"
	"testing"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting/scripttest"
	"github.com/saptools/sapgui-cli/internal/session"
)

// querySetup builds a fake screen holding everything a table query touches:
// the parameter screen, the fields table, the status bar and a results grid.
func querySetup(statusText, statusCode string) (*scripttest.Fake, *scripttest.Component) {
	grid := &scripttest.Component{
		IDVal:   "wnd[0]/usr/cntlRESULT_LIST/shellcont/shell",
		TypeVal: "GuiShell",
		Rows:    2,
		Columns: []string{"BUKRS", "GJAHR", "COUNT"},
		Cells: map[string]string{
			scripttest.CellKey(0, "BUKRS"): "1000",
			scripttest.CellKey(0, "GJAHR"): "2025",
			scripttest.CellKey(0, "COUNT"): "17",
			scripttest.CellKey(1, "BUKRS"): "2000",
			scripttest.CellKey(1, "GJAHR"): "2025",
			scripttest.CellKey(1, "COUNT"): "3",
		},
	}
	fake := scripttest.New().Add(
		&scripttest.Component{IDVal: model.MainWindow, TypeVal: "GuiMainWindow"},
		&scripttest.Component{IDVal: model.StatusBar, TypeVal: "GuiStatusbar", Text: statusText, Message: statusCode},
		&scripttest.Component{IDVal: "wnd[0]/usr/ctxtGD-TAB", TypeVal: "GuiCTextField", NameVal: "GD-TAB"},
		&scripttest.Component{IDVal: "wnd[0]/usr/txtGD-MAX_LINES", TypeVal: "GuiTextField", NameVal: "GD-MAX_LINES"},
		&scripttest.Component{IDVal: "wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/ctxtGS_FIELDS-FIELDNAME[0,0]", TypeVal: "GuiCTextField"},
		&scripttest.Component{IDVal: "wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/ctxtGS_FIELDS-FIELDNAME[0,1]", TypeVal: "GuiCTextField"},
		&scripttest.Component{IDVal: "wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/chkGS_FIELDS-AGGR[4,0]", TypeVal: "GuiCheckBox"},
		&scripttest.Component{IDVal: "wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/chkGS_FIELDS-SUM[5,1]", TypeVal: "GuiCheckBox"},
		&scripttest.Component{IDVal: "wnd[0]/usr/ctxtBUKRS", TypeVal: "GuiCTextField", NameVal: "BUKRS"},
		grid,
	)
	return fake, grid
}

func TestTableQuery(t *testing.T) {
	fake, grid := querySetup("2 entries found", "S")
	s := session.New(fake, nil)

	snap, err := TableQuery(s, TableQueryOptions{
		Table: "BSIS",
		Fields: []FieldSpec{
			{Name: "BUKRS", Group: true, Value: "1*"},
			{Name: "GJAHR", Sum: true},
		},
		MaxRows: 500,
	})
	if err != nil {
		t.Fatalf("TableQuery: %v", err)
	}

	if got := fake.Transactions; len(got) != 1 || got[0] != "SE16H" {
		t.Errorf("transactions = %v", got)
	}
	if v := fake.Get("wnd[0]/usr/ctxtGD-TAB").Text; v != "BSIS" {
		t.Errorf("table name = %q", v)
	}
	if v := fake.Get("wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/ctxtGS_FIELDS-FIELDNAME[0,0]").Text; v != "BUKRS" {
		t.Errorf("field row 0 = %q", v)
	}
	if v := fake.Get("wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/ctxtGS_FIELDS-FIELDNAME[0,1]").Text; v != "GJAHR" {
		t.Errorf("field row 1 = %q", v)
	}
	if !fake.Get("wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/chkGS_FIELDS-AGGR[4,0]").Selected {
		t.Error("group checkbox not set")
	}
	if !fake.Get("wnd[0]/usr/tblSAPLSE16HFIELDS_TABLE/chkGS_FIELDS-SUM[5,1]").Selected {
		t.Error("sum checkbox not set")
	}
	if v := fake.Get("wnd[0]/usr/ctxtBUKRS").Text; v != "1*" {
		t.Errorf("BUKRS selection = %q", v)
	}
	if v := fake.Get("wnd[0]/usr/txtGD-MAX_LINES").Text; v != "500" {
		t.Errorf("max lines = %q", v)
	}

	// Enter, enter, execute.
	wantKeys := []int{session.VKeyEnter, session.VKeyEnter, session.VKeyF8}
	if got := fake.Get(model.MainWindow).VKeys; !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("vkeys = %v, want %v", got, wantKeys)
	}

	if !reflect.DeepEqual(snap.Columns, []string{"BUKRS", "GJAHR", "COUNT"}) {
		t.Errorf("columns = %v", snap.Columns)
	}
	if len(snap.Rows) != 2 || snap.Rows[0]["COUNT"] != "17" {
		t.Errorf("rows = %v", snap.Rows)
	}
	if grid.CellReads == 0 {
		t.Error("grid never read")
	}
}

func TestTableQueryStatusFailureShortCircuits(t *testing.T) {
	fake, grid := querySetup("Table UNKNOWN does not exist", "E")
	s := session.New(fake, nil)

	snap, err := TableQuery(s, TableQueryOptions{
		Table:  "UNKNOWN",
		Fields: []FieldSpec{{Name: "BUKRS"}},
	})
	if err != nil {
		t.Fatalf("TableQuery: %v", err)
	}
	if !snap.Empty() {
		t.Errorf("snapshot = %v, want empty on remote failure", snap)
	}
	if grid.CellReads != 0 {
		t.Errorf("grid read %d cells despite the failure", grid.CellReads)
	}
}

func TestTableQueryNoCountWithoutGrouping(t *testing.T) {
	got := queryColumns([]FieldSpec{{Name: "BUKRS"}, {Name: "GJAHR"}})
	if !reflect.DeepEqual(got, []string{"BUKRS", "GJAHR"}) {
		t.Errorf("columns = %v", got)
	}
	got = queryColumns([]FieldSpec{{Name: "BUKRS", Group: true}})
	if !reflect.DeepEqual(got, []string{"BUKRS", "COUNT"}) {
		t.Errorf("grouped columns = %v", got)
	}
}

func TestTableQueryDismissesPopup(t *testing.T) {
	fake, _ := querySetup("done", "S")
	fake.Add(
		&scripttest.Component{IDVal: model.PopupWindow, TypeVal: "GuiModalWindow"},
		&scripttest.Component{IDVal: session.DefaultPopupDismiss, TypeVal: "GuiButton"},
	)
	s := session.New(fake, nil)

	if _, err := TableQuery(s, TableQueryOptions{Table: "BSIS", Fields: []FieldSpec{{Name: "BUKRS"}}}); err != nil {
		t.Fatalf("TableQuery: %v", err)
	}
	if fake.Get(session.DefaultPopupDismiss).PressCount != 1 {
		t.Error("popup not dismissed")
	}
}

func TestReport(t *testing.T) {
	grid := &scripttest.Component{
		IDVal:   "wnd[0]/usr/cntlGRID1/shellcont/shell",
		TypeVal: "GuiShell",
		Rows:    1,
		Columns: []string{"LIFNR", "DMBTR"},
		Cells: map[string]string{
			scripttest.CellKey(0, "LIFNR"): "4711",
			scripttest.CellKey(0, "DMBTR"): "1500.00",
		},
	}
	fake := scripttest.New().Add(
		&scripttest.Component{IDVal: model.MainWindow, TypeVal: "GuiMainWindow"},
		&scripttest.Component{IDVal: model.StatusBar, TypeVal: "GuiStatusbar", Message: "S"},
		&scripttest.Component{IDVal: "wnd[0]/usr/ctxtKD_LIFNR", TypeVal: "GuiCTextField", NameVal: "KD_LIFNR"},
		grid,
	)
	s := session.New(fake, nil)

	snap, err := Report(s, ReportOptions{
		Transaction: "FBL1N",
		Selection: map[string]string{
			"KD_LIFNR": "4711",
			"MISSING":  "ignored", // no such field; run continues
		},
		Columns: []string{"LIFNR", "DMBTR"},
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if got := fake.Transactions; len(got) != 1 || got[0] != "FBL1N" {
		t.Errorf("transactions = %v", got)
	}
	if v := fake.Get("wnd[0]/usr/ctxtKD_LIFNR").Text; v != "4711" {
		t.Errorf("selection = %q", v)
	}
	if got := fake.Get(model.MainWindow).VKeys; !reflect.DeepEqual(got, []int{session.VKeyF8}) {
		t.Errorf("vkeys = %v", got)
	}
	if len(snap.Rows) != 1 || snap.Rows[0]["DMBTR"] != "1500.00" {
		t.Errorf("rows = %v", snap.Rows)
	}
}

func TestReportCustomExecuteKey(t *testing.T) {
	fake := scripttest.New().Add(
		&scripttest.Component{IDVal: model.MainWindow, TypeVal: "GuiMainWindow"},
		&scripttest.Component{IDVal: model.StatusBar, TypeVal: "GuiStatusbar", Message: "S"},
	)
	s := session.New(fake, nil)

	snap, err := Report(s, ReportOptions{Transaction: "VA05", ExecuteVKey: ExecuteWithEnter})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got := fake.Get(model.MainWindow).VKeys; !reflect.DeepEqual(got, []int{session.VKeyEnter}) {
		t.Errorf("vkeys = %v", got)
	}
	// No grid on screen: the harvest degrades to empty rather than failing.
	if !snap.Empty() {
		t.Errorf("snapshot = %v, want empty", snap)
	}
}
