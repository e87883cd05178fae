package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/scripting/scripttest"
)

func TestNavigationRecordsAndInvalidates(t *testing.T) {
	fake := scripttest.New()
	s := newTestSession(fake)

	g0 := s.Generation()
	if err := s.StartTransaction("SE16H"); err != nil {
		t.Fatalf("StartTransaction: %v", err)
	}
	if err := s.SendCommand("/nVA03"); err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if err := s.EndTransaction(); err != nil {
		t.Fatalf("EndTransaction: %v", err)
	}

	if len(fake.Transactions) != 1 || fake.Transactions[0] != "SE16H" {
		t.Errorf("transactions = %v", fake.Transactions)
	}
	if len(fake.Commands) != 1 || fake.Commands[0] != "/nVA03" {
		t.Errorf("commands = %v", fake.Commands)
	}
	if fake.EndCount != 1 {
		t.Errorf("end count = %d", fake.EndCount)
	}
	if s.Generation() != g0+3 {
		t.Errorf("generation = %d, want one bump per navigation", s.Generation())
	}
}

func TestSendVKeyDefaultsToMainWindow(t *testing.T) {
	wnd := &scripttest.Component{IDVal: model.MainWindow, TypeVal: "GuiMainWindow"}
	fake := scripttest.New().Add(wnd)
	s := newTestSession(fake)

	if err := s.SendVKey(VKeyF8, ""); err != nil {
		t.Fatalf("SendVKey: %v", err)
	}
	if len(wnd.VKeys) != 1 || wnd.VKeys[0] != VKeyF8 {
		t.Errorf("vkeys = %v", wnd.VKeys)
	}
}

func TestSendVKeyMissingWindow(t *testing.T) {
	s := newTestSession(scripttest.New())
	err := s.SendVKey(VKeyEnter, model.PopupWindow)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestWithLockedUI(t *testing.T) {
	fake := scripttest.New()
	s := newTestSession(fake)

	ran := false
	if err := s.WithLockedUI(func() error { ran = true; return nil }); err != nil {
		t.Fatalf("WithLockedUI: %v", err)
	}
	if !ran {
		t.Error("fn did not run")
	}
	if fake.LockCount != 1 || fake.UnlockCount != 1 {
		t.Errorf("lock/unlock = %d/%d, want 1/1", fake.LockCount, fake.UnlockCount)
	}
}

func TestWithLockedUIUnlocksOnError(t *testing.T) {
	fake := scripttest.New()
	s := newTestSession(fake)

	boom := errors.New("boom")
	if err := s.WithLockedUI(func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want the fn error", err)
	}
	if fake.UnlockCount != 1 {
		t.Errorf("unlock count = %d, want 1", fake.UnlockCount)
	}
}

func TestWithLockedUILockFailure(t *testing.T) {
	fake := scripttest.New()
	fake.LockErr = errors.New("scripting disabled")
	s := newTestSession(fake)

	ran := false
	if err := s.WithLockedUI(func() error { ran = true; return nil }); err == nil {
		t.Error("lock failure returned no error")
	}
	if ran {
		t.Error("fn ran despite lock failure")
	}
	if fake.UnlockCount != 0 {
		t.Errorf("unlock count = %d, want 0 when lock never took", fake.UnlockCount)
	}
}

func TestHardCopy(t *testing.T) {
	wnd := &scripttest.Component{IDVal: model.MainWindow, TypeVal: "GuiMainWindow"}
	fake := scripttest.New().Add(wnd)
	s := newTestSession(fake)

	path := filepath.Join(t.TempDir(), "screen.png")
	if err := s.HardCopy("", path); err != nil {
		t.Fatalf("HardCopy: %v", err)
	}
	if fake.HardCopies[model.MainWindow] != path {
		t.Errorf("recorded copies = %v", fake.HardCopies)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot file: %v", err)
	}
}

func TestClose(t *testing.T) {
	fake := scripttest.New()
	s := newTestSession(fake)
	s.Close()
	if !fake.Closed {
		t.Error("backend not closed")
	}
}
