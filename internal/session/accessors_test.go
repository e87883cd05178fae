package session

import (
	"errors"
	"testing"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting/scripttest"
)

func TestSetFieldPrefixLadder(t *testing.T) {
	// Only a plain text field exists; the ctxt probe must miss and move on.
	field := &scripttest.Component{IDVal: "wnd[0]/usr/txtMATNR", TypeVal: "GuiTextField", NameVal: "MATNR"}
	s := newTestSession(scripttest.New().Add(field))

	if err := s.SetField("MATNR", "100-200"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if field.Text != "100-200" {
		t.Errorf("field text = %q, want 100-200", field.Text)
	}
}

func TestSetFieldRoutesComboToKey(t *testing.T) {
	combo := &scripttest.Component{IDVal: "wnd[0]/usr/cmbPERIOD", TypeVal: "GuiComboBox", NameVal: "PERIOD"}
	s := newTestSession(scripttest.New().Add(combo))

	if err := s.SetField("PERIOD", "01"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if combo.Key != "01" {
		t.Errorf("combo key = %q, want 01", combo.Key)
	}
	if combo.Text != "" {
		t.Errorf("combo text set to %q, want SetKey path only", combo.Text)
	}
}

func TestSetFieldSkipsFailingProbe(t *testing.T) {
	// The ctxt match refuses writes; the ladder must continue to the txt
	// match rather than fail.
	broken := &scripttest.Component{
		IDVal: "wnd[0]/usr/ctxtWERKS", TypeVal: "GuiCTextField", NameVal: "WERKS",
		SetTextErr: errors.New("read-only"),
	}
	working := &scripttest.Component{IDVal: "wnd[0]/usr/txtWERKS", TypeVal: "GuiTextField", NameVal: "WERKS"}
	s := newTestSession(scripttest.New().Add(broken, working))

	if err := s.SetField("WERKS", "1000"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if working.Text != "1000" {
		t.Errorf("fallback field text = %q, want 1000", working.Text)
	}
}

func TestSetFieldExhaustedLadder(t *testing.T) {
	s := newTestSession(scripttest.New())
	err := s.SetField("NOPE", "x")
	if !errors.Is(err, ErrNoCompatibleControl) {
		t.Errorf("err = %v, want ErrNoCompatibleControl", err)
	}
}

func TestGetFieldPrefersEditableOverLabel(t *testing.T) {
	label := &scripttest.Component{IDVal: "wnd[0]/usr/lblKUNNR", TypeVal: "GuiLabel", NameVal: "KUNNR", Text: "label"}
	field := &scripttest.Component{IDVal: "wnd[0]/usr/txtKUNNR", TypeVal: "GuiTextField", NameVal: "KUNNR", Text: "edit"}
	s := newTestSession(scripttest.New().Add(label, field))

	v, err := s.GetField("KUNNR")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if v != "edit" {
		t.Errorf("GetField = %q, want the txt match", v)
	}
}

func TestTypeMismatch(t *testing.T) {
	btn := &scripttest.Component{IDVal: "wnd[0]/tbar[1]/btn[8]", TypeVal: "GuiButton"}
	s := newTestSession(scripttest.New().Add(btn))

	c, err := s.FindByID(btn.IDVal)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	err = c.SetText("x")
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("err = %v, want TypeMismatchError", err)
	}
	if tm.Kind != model.KindButton {
		t.Errorf("mismatch kind = %q", tm.Kind)
	}
}

func TestStaleAddressAfterNavigation(t *testing.T) {
	field := &scripttest.Component{IDVal: "wnd[0]/usr/txtA", TypeVal: "GuiTextField", Text: "v"}
	s := newTestSession(scripttest.New().Add(field))

	c, err := s.FindByID(field.IDVal)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if _, err := c.Text(); err != nil {
		t.Fatalf("fresh read: %v", err)
	}

	if err := s.StartTransaction("SE16"); err != nil {
		t.Fatalf("StartTransaction: %v", err)
	}
	_, err = c.Text()
	var stale *StaleAddressError
	if !errors.As(err, &stale) {
		t.Fatalf("post-navigation read err = %v, want StaleAddressError", err)
	}
	if stale.Resolved >= stale.Current {
		t.Errorf("generations: resolved %d, current %d", stale.Resolved, stale.Current)
	}

	// Re-resolution after navigation works.
	c2, err := s.FindByID(field.IDVal)
	if err != nil {
		t.Fatalf("re-resolve: %v", err)
	}
	if _, err := c2.Text(); err != nil {
		t.Errorf("read after re-resolve: %v", err)
	}
}

func TestPressInvalidatesAddresses(t *testing.T) {
	btn := &scripttest.Component{IDVal: "wnd[0]/tbar[1]/btn[8]", TypeVal: "GuiButton"}
	field := &scripttest.Component{IDVal: "wnd[0]/usr/txtA", TypeVal: "GuiTextField"}
	s := newTestSession(scripttest.New().Add(btn, field))

	c, _ := s.FindByID(field.IDVal)
	if err := s.PressButtonByID(btn.IDVal); err != nil {
		t.Fatalf("PressButtonByID: %v", err)
	}
	if btn.PressCount != 1 {
		t.Errorf("press count = %d", btn.PressCount)
	}
	if _, err := c.Text(); err == nil {
		t.Error("read through pre-press handle succeeded, want stale error")
	}
}

func TestTabSelectInvalidatesAddresses(t *testing.T) {
	tab := &scripttest.Component{IDVal: "wnd[0]/usr/tabsTS/tabpDETAIL", TypeVal: "GuiTab"}
	s := newTestSession(scripttest.New().Add(tab))

	before := s.Generation()
	if err := s.SelectTab(tab.IDVal); err != nil {
		t.Fatalf("SelectTab: %v", err)
	}
	if tab.SelectCount != 1 {
		t.Errorf("select count = %d", tab.SelectCount)
	}
	if s.Generation() == before {
		t.Error("generation unchanged after tab select")
	}
}

func TestRadioSelectDoesNotInvalidate(t *testing.T) {
	rad := &scripttest.Component{IDVal: "wnd[0]/usr/radOPT1", TypeVal: "GuiRadioButton", NameVal: "OPT1"}
	s := newTestSession(scripttest.New().Add(rad))

	before := s.Generation()
	if err := s.SelectRadio("OPT1"); err != nil {
		t.Fatalf("SelectRadio: %v", err)
	}
	if s.Generation() != before {
		t.Error("generation bumped by radio select")
	}
}

func TestSetCheckbox(t *testing.T) {
	chk := &scripttest.Component{IDVal: "wnd[0]/usr/chkALL", TypeVal: "GuiCheckBox", NameVal: "ALL"}
	s := newTestSession(scripttest.New().Add(chk))

	if err := s.SetCheckbox("ALL", true); err != nil {
		t.Fatalf("SetCheckbox: %v", err)
	}
	if !chk.Selected {
		t.Error("checkbox not selected")
	}
	if err := s.SetCheckboxByID(chk.IDVal, false); err != nil {
		t.Fatalf("SetCheckboxByID: %v", err)
	}
	if chk.Selected {
		t.Error("checkbox still selected")
	}
}
